package handler

import (
	"log/slog"
	"net/http"

	"elyukal/internal/delivery/http/response"
	"elyukal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard and count handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stats returns the headline numbers for the admin dashboard.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.FetchStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}

// StoreStats returns the own-store numbers for the authenticated seller.
func (h *DashboardHandler) StoreStats(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Not authenticated")
	}

	stats, err := h.uc.FetchStoreStats(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Store dashboard stats retrieved successfully")
}

// Activities lists the latest admin activity log entries.
func (h *DashboardHandler) Activities(c echo.Context) error {
	activities, err := h.uc.FetchRecentActivities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityViews(activities), "Activities retrieved successfully")
}

// countResponse wraps a single total for the legacy count endpoints.
type countResponse struct {
	Total int64 `json:"total"`
}

// TotalUsers returns the shopper account count.
func (h *DashboardHandler) TotalUsers(c echo.Context) error {
	stats, err := h.uc.FetchStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Total: stats.TotalUsers}, "User count retrieved successfully")
}

// TotalAdminUsers returns the admin account count.
func (h *DashboardHandler) TotalAdminUsers(c echo.Context) error {
	total, err := h.uc.CountAdminUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Total: total}, "Admin count retrieved successfully")
}

// TotalCategories returns the distinct product category count.
func (h *DashboardHandler) TotalCategories(c echo.Context) error {
	stats, err := h.uc.FetchStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Total: stats.TotalCategories}, "Category count retrieved successfully")
}

// TotalStores returns the store count.
func (h *DashboardHandler) TotalStores(c echo.Context) error {
	stats, err := h.uc.FetchStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Total: stats.TotalStores}, "Store count retrieved successfully")
}

// TotalReviews returns the review count.
func (h *DashboardHandler) TotalReviews(c echo.Context) error {
	stats, err := h.uc.FetchStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countResponse{Total: stats.TotalReviews}, "Review count retrieved successfully")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
