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

// CatalogHandler holds dependencies for the public reference-data handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Municipalities lists the La Union municipality reference rows.
func (h *CatalogHandler) Municipalities(c echo.Context) error {
	municipalities, err := h.uc.FetchMunicipalities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMunicipalityViews(municipalities), "Municipalities retrieved successfully")
}

// ProductReviews lists the reviews left on a product.
func (h *CatalogHandler) ProductReviews(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	reviews, err := h.uc.FetchProductReviews(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReviewViews(reviews), "Reviews retrieved successfully")
}
