package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"elyukal/internal/delivery/http/response"
	"elyukal/internal/domain/entity"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerApplicationHandler holds dependencies for the seller onboarding flow.
type SellerApplicationHandler struct {
	uc     usecase.SellerApplicationUsecase
	logger *slog.Logger
}

// NewSellerApplicationHandler is the constructor for SellerApplicationHandler, injected by Fx.
func NewSellerApplicationHandler(uc usecase.SellerApplicationUsecase, logger *slog.Logger) *SellerApplicationHandler {
	return &SellerApplicationHandler{
		uc:     uc,
		logger: logger,
	}
}

type sellerApplicationRequest struct {
	Email       string `form:"email" validate:"required,email"`
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	PhoneNumber string `form:"phone_number" validate:"required"`
	Password    string `form:"password" validate:"required,min=8"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// Submit handles a multipart seller application: form fields plus the business
// permit, valid ID and optional DTI registration documents.
func (h *SellerApplicationHandler) Submit(c echo.Context) error {
	var req sellerApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	permit, closePermit, err := formFile(c, "business_permit")
	if err != nil {
		return errors.WithStack(err)
	}
	if closePermit != nil {
		defer closePermit()
	}

	validID, closeValidID, err := formFile(c, "valid_id")
	if err != nil {
		return errors.WithStack(err)
	}
	if closeValidID != nil {
		defer closeValidID()
	}

	dti, closeDTI, err := formFile(c, "dti_registration")
	if err != nil {
		return errors.WithStack(err)
	}
	if closeDTI != nil {
		defer closeDTI()
	}

	user, err := h.uc.Submit(c.Request().Context(), &usecase.SellerApplicationInput{
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		BusinessPermit:  permit,
		ValidID:         validID,
		DTIRegistration: dti,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newStoreUserProfile(user), "Application submitted successfully")
}

// List returns every seller application for admin review.
func (h *SellerApplicationHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreUserProfiles(users), "Applications retrieved successfully")
}

// UpdateStatus accepts or rejects an application.
func (h *SellerApplicationHandler) UpdateStatus(c echo.Context) error {
	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid application id")
	}

	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	user, err := h.uc.UpdateStatus(c.Request().Context(), actor, applicationID, entity.ApplicationStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreUserProfile(user), "Application status updated")
}
