package handler

import (
	"log/slog"
	"net/http"

	"elyukal/internal/delivery/http/response"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin-facing shopper account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type userProfileRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type banRequest struct {
	Reason string `json:"reason"`
}

// FetchAll lists every shopper account.
func (h *UserHandler) FetchAll(c echo.Context) error {
	users, err := h.uc.FetchAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "Users retrieved successfully")
}

// FetchByEmail returns a single shopper account.
func (h *UserHandler) FetchByEmail(c echo.Context) error {
	user, err := h.uc.FetchByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// UpdateProfile edits a shopper's name fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	var req userProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), actor, c.Param("email"), &usecase.UserProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User updated successfully")
}

// Ban marks a shopper as banned.
func (h *UserHandler) Ban(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	var req banRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban input")
	}

	user, err := h.uc.Ban(c.Request().Context(), actor, c.Param("email"), req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User banned successfully")
}

// Unban clears a shopper's ban state.
func (h *UserHandler) Unban(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	user, err := h.uc.Unban(c.Request().Context(), actor, c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User unbanned successfully")
}
