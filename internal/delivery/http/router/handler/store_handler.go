package handler

import (
	"log/slog"
	"net/http"

	"elyukal/internal/delivery/http/response"
	domainerrors "elyukal/internal/domain/errors"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store handlers, shared by the admin and
// seller route groups.
type StoreHandler struct {
	uc       usecase.StoreUsecase
	products usecase.ProductUsecase
	logger   *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, products usecase.ProductUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:       uc,
		products: products,
		logger:   logger,
	}
}

type storeRequest struct {
	Name           string  `form:"name" validate:"required"`
	Description    string  `form:"description"`
	StoreImageURL  string  `form:"store_image_url"`
	KeepImage      bool    `form:"keep_image"`
	Type           string  `form:"type"`
	Town           string  `form:"town"`
	Latitude       float64 `form:"latitude"`
	Longitude      float64 `form:"longitude"`
	Phone          string  `form:"phone"`
	Email          string  `form:"email"`
	Website        string  `form:"website"`
	OperatingHours string  `form:"operating_hours"`
	OwnerID        int64   `form:"owner_id"`
}

func (req *storeRequest) toInput(image *usecase.FileUpload) *usecase.StoreInput {
	return &usecase.StoreInput{
		Name:           req.Name,
		Description:    req.Description,
		StoreImageURL:  req.StoreImageURL,
		Image:          image,
		Type:           req.Type,
		Town:           req.Town,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		OperatingHours: req.OperatingHours,
		OwnerID:        req.OwnerID,
	}
}

// Create handles the store creation request, optionally linking the new store
// to a seller account.
func (h *StoreHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, closeImage, err := formFile(c, "store_image")
	if err != nil {
		return errors.WithStack(err)
	}
	if closeImage != nil {
		defer closeImage()
	}

	store, err := h.uc.Create(c.Request().Context(), actor, req.toInput(image))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newStoreView(store), "Store created successfully")
}

// Update handles the store update request. With keep_image set and no fresh
// upload, the stored banner is left untouched.
func (h *StoreHandler) Update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	storeID := c.Param("id")

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, closeImage, err := formFile(c, "store_image")
	if err != nil {
		return errors.WithStack(err)
	}
	if closeImage != nil {
		defer closeImage()
	}

	if image == nil && req.KeepImage {
		existing, err := h.uc.FetchByID(c.Request().Context(), storeID)
		if err != nil {
			return errors.WithStack(err)
		}

		req.StoreImageURL = existing.StoreImageURL
	}

	store, err := h.uc.Update(c.Request().Context(), actor, storeID, req.toInput(image))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreView(store), "Store updated successfully")
}

// Delete removes a store, its products and its seller link.
func (h *StoreHandler) Delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}

// FetchAll returns every store.
func (h *StoreHandler) FetchAll(c echo.Context) error {
	stores, err := h.uc.FetchAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreViews(stores), "Stores retrieved successfully")
}

// FetchByID returns a single store together with its active products.
func (h *StoreHandler) FetchByID(c echo.Context) error {
	storeID := c.Param("id")

	store, err := h.uc.FetchByID(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := newStoreView(store)

	products, err := h.products.FetchByStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}
	view.Products = newProductViews(products)

	return response.Success(c, http.StatusOK, view, "Store retrieved successfully")
}

// FetchOwn returns the seller's own store; the path id must match the store
// they own.
func (h *StoreHandler) FetchOwn(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	if actor.StoreID == "" {
		return domainerrors.ErrNoStoreOwned
	}

	if actor.StoreID != c.Param("id") {
		return domainerrors.ErrForbidden.WrapMessage("store belongs to another seller")
	}

	return h.FetchByID(c)
}

// QRCode renders a PNG QR code linking to the public store page.
func (h *StoreHandler) QRCode(c echo.Context) error {
	png, err := h.uc.GenerateQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
