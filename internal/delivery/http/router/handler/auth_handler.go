// Package handler contains the HTTP handlers for the application.
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

// AuthHandler holds dependencies for admin authentication handlers.
type AuthHandler struct {
	uc     usecase.AdminAuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AdminAuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles the admin registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.Register(c.Request().Context(), &usecase.AdminCredentials{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAdminProfile(admin), "Admin registered successfully")
}

// Login handles the admin login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, token, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	session := h.cfg.Session.Admin
	setSessionCookie(c, session.CookieName, token, session.Expiry())

	return response.Success(c, http.StatusOK, newAdminProfile(admin), "Login successful")
}

// Logout deletes the session row and clears the cookie. Logging out without a
// valid session still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	session := h.cfg.Session.Admin

	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != nil {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn("Failed to delete admin session", slog.Any("error", err))
		}
	}

	clearSessionCookie(c, session.CookieName)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Profile returns the authenticated admin's public fields.
func (h *AuthHandler) Profile(c echo.Context) error {
	admin, ok := adminFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	return response.Success(c, http.StatusOK, newAdminProfile(admin), "Profile retrieved successfully")
}
