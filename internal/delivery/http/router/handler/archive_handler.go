package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"elyukal/internal/delivery/http/response"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArchiveHandler holds dependencies for the product archive lifecycle, shared
// by the admin and seller route groups.
type ArchiveHandler struct {
	uc     usecase.ArchiveUsecase
	logger *slog.Logger
}

// NewArchiveHandler is the constructor for ArchiveHandler, injected by Fx.
func NewArchiveHandler(uc usecase.ArchiveUsecase, logger *slog.Logger) *ArchiveHandler {
	return &ArchiveHandler{
		uc:     uc,
		logger: logger,
	}
}

type archiveRequest struct {
	Reason string `json:"reason"`
}

// Archive moves an active product into the archive.
func (h *ArchiveHandler) Archive(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req archiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid archive input")
	}

	snapshot, err := h.uc.Archive(c.Request().Context(), actor, productID, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newArchivedProductView(snapshot), "Product archived successfully")
}

// Restore moves an archived product back to the active table.
func (h *ArchiveHandler) Restore(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	archivedID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid archive id")
	}

	product, err := h.uc.Restore(c.Request().Context(), actor, archivedID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product restored successfully")
}

// PermanentlyDelete removes an archived product for good.
func (h *ArchiveHandler) PermanentlyDelete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	archivedID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid archive id")
	}

	if err := h.uc.PermanentlyDelete(c.Request().Context(), actor, archivedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product permanently deleted")
}

// FetchArchived lists the archived products visible to the actor.
func (h *ArchiveHandler) FetchArchived(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	products, err := h.uc.FetchArchived(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newArchivedProductViews(products), "Archived products retrieved successfully")
}
