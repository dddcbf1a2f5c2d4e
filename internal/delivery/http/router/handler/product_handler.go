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

// ProductHandler holds dependencies for product handlers, shared by the admin
// and seller route groups.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name        string   `form:"name" validate:"required"`
	Description string   `form:"description"`
	Category    string   `form:"category"`
	PriceMin    float64  `form:"price_min"`
	PriceMax    float64  `form:"price_max"`
	InStock     bool     `form:"in_stock"`
	ImageURLs   []string `form:"image_urls"`
	ARAssetURL  string   `form:"ar_asset_url"`
	Address     string   `form:"address"`
	Latitude    float64  `form:"latitude"`
	Longitude   float64  `form:"longitude"`
	StoreID     string   `form:"store_id"`
	Town        string   `form:"town"`
}

// bindProductInput reads the multipart product form, including fresh image and
// AR asset uploads. The returned cleanup closes the opened files.
func bindProductInput(c echo.Context) (*usecase.ProductInput, func(), error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, nil, err
	}

	images, closeImages, err := formFiles(c, "images")
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	arAsset, closeARAsset, err := formFile(c, "ar_asset")
	if err != nil {
		closeImages()

		return nil, nil, errors.WithStack(err)
	}

	cleanup := func() {
		closeImages()
		if closeARAsset != nil {
			closeARAsset()
		}
	}

	input := &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		InStock:     req.InStock,
		ImageURLs:   req.ImageURLs,
		Images:      images,
		ARAssetURL:  req.ARAssetURL,
		ARAsset:     arAsset,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		StoreID:     req.StoreID,
		Town:        req.Town,
	}

	return input, cleanup, nil
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	input, cleanup, err := bindProductInput(c)
	if err != nil {
		return err
	}
	defer cleanup()

	product, err := h.uc.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product created successfully")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	input, cleanup, err := bindProductInput(c)
	if err != nil {
		return err
	}
	defer cleanup()

	product, err := h.uc.Update(c.Request().Context(), actor, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated successfully")
}

// Delete handles the hard product delete request.
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// FetchAll returns every active product.
func (h *ProductHandler) FetchAll(c echo.Context) error {
	products, err := h.uc.FetchAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "Products retrieved successfully")
}

// FetchByID returns a single active product.
func (h *ProductHandler) FetchByID(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.FetchByID(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product retrieved successfully")
}

// FetchOwn returns the authenticated seller's active products.
func (h *ProductHandler) FetchOwn(c echo.Context) error {
	user, ok := storeUserFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	if user.StoreOwned == "" {
		return response.Success(c, http.StatusOK, []*ProductView{}, "Products retrieved successfully")
	}

	products, err := h.uc.FetchByStore(c.Request().Context(), user.StoreOwned)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "Products retrieved successfully")
}

// FetchMostViewed returns the top products by view count.
func (h *ProductHandler) FetchMostViewed(c echo.Context) error {
	products, err := h.uc.FetchMostViewed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "Products retrieved successfully")
}
