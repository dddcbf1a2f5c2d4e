package handler

import (
	"log/slog"
	"net/http"

	"elyukal/config"
	"elyukal/internal/delivery/http/response"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreAuthHandler holds dependencies for seller authentication handlers.
type StoreAuthHandler struct {
	uc     usecase.StoreAuthUsecase
	stores usecase.StoreUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewStoreAuthHandler is the constructor for StoreAuthHandler, injected by Fx.
func NewStoreAuthHandler(uc usecase.StoreAuthUsecase, stores usecase.StoreUsecase, cfg *config.Config, logger *slog.Logger) *StoreAuthHandler {
	return &StoreAuthHandler{
		uc:     uc,
		stores: stores,
		cfg:    cfg,
		logger: logger,
	}
}

// Login handles the seller login request and sets the session cookie.
func (h *StoreAuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	session := h.cfg.Session.StoreUser
	setSessionCookie(c, session.CookieName, token, session.Expiry())

	return response.Success(c, http.StatusOK, newStoreUserProfile(user), "Login successful")
}

// Logout deletes the session row and clears the cookie. Logging out without a
// valid session still succeeds.
func (h *StoreAuthHandler) Logout(c echo.Context) error {
	session := h.cfg.Session.StoreUser

	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != nil {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn("Failed to delete store user session", slog.Any("error", err))
		}
	}

	clearSessionCookie(c, session.CookieName)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Profile returns the authenticated seller's public fields together with the
// owned store, when one is linked.
func (h *StoreAuthHandler) Profile(c echo.Context) error {
	user, ok := storeUserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	profile := newStoreUserProfile(user)

	if user.StoreOwned != "" {
		store, err := h.stores.FetchByID(c.Request().Context(), user.StoreOwned)
		if err != nil {
			// A dangling store link should not break the profile page.
			h.logger.Warn("Failed to load owned store", slog.Any("error", err), slog.String("store_id", user.StoreOwned))
		} else {
			profile.Store = newStoreView(store)
		}
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}
