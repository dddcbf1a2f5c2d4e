// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"elyukal/internal/delivery/http/middleware"
	"elyukal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler              *handler.AuthHandler
	StoreAuthHandler         *handler.StoreAuthHandler
	SellerApplicationHandler *handler.SellerApplicationHandler
	ProductHandler           *handler.ProductHandler
	ArchiveHandler           *handler.ArchiveHandler
	StoreHandler             *handler.StoreHandler
	UserHandler              *handler.UserHandler
	DashboardHandler         *handler.DashboardHandler
	CatalogHandler           *handler.CatalogHandler
	AuthMiddleware           *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler              *handler.AuthHandler
	storeAuthHandler         *handler.StoreAuthHandler
	sellerApplicationHandler *handler.SellerApplicationHandler
	productHandler           *handler.ProductHandler
	archiveHandler           *handler.ArchiveHandler
	storeHandler             *handler.StoreHandler
	userHandler              *handler.UserHandler
	dashboardHandler         *handler.DashboardHandler
	catalogHandler           *handler.CatalogHandler
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:              params.AuthHandler,
		storeAuthHandler:         params.StoreAuthHandler,
		sellerApplicationHandler: params.SellerApplicationHandler,
		productHandler:           params.ProductHandler,
		archiveHandler:           params.ArchiveHandler,
		storeHandler:             params.StoreHandler,
		userHandler:              params.UserHandler,
		dashboardHandler:         params.DashboardHandler,
		catalogHandler:           params.CatalogHandler,
		authMiddleware:           params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes used by the mobile app
	e.GET("/fetch_products", r.productHandler.FetchAll)
	e.GET("/fetch_product/:id", r.productHandler.FetchByID)
	e.GET("/fetch_most_viewed_products", r.productHandler.FetchMostViewed)
	e.GET("/fetch_stores", r.storeHandler.FetchAll)
	e.GET("/fetch_store/:id", r.storeHandler.FetchByID)
	e.GET("/store/:id/qrcode", r.storeHandler.QRCode)
	e.GET("/fetch_municipalities", r.catalogHandler.Municipalities)
	e.GET("/fetch_product_reviews/:product_id", r.catalogHandler.ProductReviews)

	// Admin auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.RequireAdmin)
	}

	// Seller application submission is public; review is admin-only below.
	e.POST("/seller-application", r.sellerApplicationHandler.Submit)

	// Admin routes that require an admin session
	adminGroup := e.Group("")
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/seller-applications", r.sellerApplicationHandler.List)
		adminGroup.PUT("/seller-applications/:id/status", r.sellerApplicationHandler.UpdateStatus)

		adminGroup.POST("/add_product", r.productHandler.Create)
		adminGroup.PUT("/update_product/:id", r.productHandler.Update)
		adminGroup.DELETE("/delete_product/:id", r.productHandler.Delete)

		adminGroup.PUT("/archive-product/:id", r.archiveHandler.Archive)
		adminGroup.PUT("/restore-product/:id", r.archiveHandler.Restore)
		adminGroup.DELETE("/permanently-delete-product/:id", r.archiveHandler.PermanentlyDelete)
		adminGroup.GET("/fetch-archived-products", r.archiveHandler.FetchArchived)

		adminGroup.POST("/add_store", r.storeHandler.Create)
		adminGroup.PUT("/update_store/:id", r.storeHandler.Update)
		adminGroup.DELETE("/delete_store/:id", r.storeHandler.Delete)

		adminGroup.GET("/fetch_users", r.userHandler.FetchAll)
		adminGroup.GET("/fetch_user/:email", r.userHandler.FetchByEmail)
		adminGroup.PUT("/update_user/:email", r.userHandler.UpdateProfile)
		adminGroup.PUT("/ban_user/:email", r.userHandler.Ban)
		adminGroup.PUT("/unban_user/:email", r.userHandler.Unban)

		adminGroup.GET("/dashboard/stats", r.dashboardHandler.Stats)
		adminGroup.GET("/fetch_activities", r.dashboardHandler.Activities)
		adminGroup.GET("/get_total_number_of_users", r.dashboardHandler.TotalUsers)
		adminGroup.GET("/get_total_number_of_admin_users", r.dashboardHandler.TotalAdminUsers)
		adminGroup.GET("/get_total_number_of_categories", r.dashboardHandler.TotalCategories)
		adminGroup.GET("/get_total_number_of_stores", r.dashboardHandler.TotalStores)
		adminGroup.GET("/get_total_number_of_reviews", r.dashboardHandler.TotalReviews)
	}

	// Seller routes scoped to the session owner's store
	storeUserGroup := e.Group("/store-user")
	storeUserGroup.POST("/login", r.storeAuthHandler.Login)
	storeUserGroup.POST("/logout", r.storeAuthHandler.Logout)
	storeUserGroup.Use(r.authMiddleware.RequireStoreUser)
	{
		storeUserGroup.GET("/profile", r.storeAuthHandler.Profile)

		storeUserGroup.GET("/fetch_products", r.productHandler.FetchOwn)
		storeUserGroup.POST("/add_product", r.productHandler.Create)
		storeUserGroup.PUT("/update_product/:id", r.productHandler.Update)
		storeUserGroup.DELETE("/delete_product/:id", r.productHandler.Delete)

		storeUserGroup.PUT("/archive-product/:id", r.archiveHandler.Archive)
		storeUserGroup.PUT("/restore-product/:id", r.archiveHandler.Restore)
		storeUserGroup.DELETE("/permanently-delete-product/:id", r.archiveHandler.PermanentlyDelete)
		storeUserGroup.GET("/fetch-archived-products", r.archiveHandler.FetchArchived)

		storeUserGroup.GET("/store/:id", r.storeHandler.FetchOwn)
		storeUserGroup.PUT("/store/:id", r.storeHandler.Update)

		storeUserGroup.GET("/dashboard", r.dashboardHandler.StoreStats)
	}
}
