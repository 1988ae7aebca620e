// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"venturesroom/internal/delivery/http/middleware"
	"venturesroom/internal/delivery/http/router/handler"
	"venturesroom/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router wires up,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	DashboardHandler *handler.DashboardHandler
	DirectoryHandler *handler.DirectoryHandler
	DiscountHandler  *handler.DiscountHandler
	UploadHandler    *handler.UploadHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth      *handler.AuthHandler
	product   *handler.ProductHandler
	order     *handler.OrderHandler
	dashboard *handler.DashboardHandler
	directory *handler.DirectoryHandler
	discount  *handler.DiscountHandler
	upload    *handler.UploadHandler
	authMW    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:      params.AuthHandler,
		product:   params.ProductHandler,
		order:     params.OrderHandler,
		dashboard: params.DashboardHandler,
		directory: params.DirectoryHandler,
		discount:  params.DiscountHandler,
		upload:    params.UploadHandler,
		authMW:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.GET("/me", r.auth.Me, r.authMW.Authenticate)
		authGroup.POST("/approve/:userID", r.auth.Approve,
			r.authMW.Authenticate, r.authMW.RequireRole(entity.RoleAdmin))
	}

	// Product routes: tenant scoped. Anonymous callers only resolve a
	// tenant in demo mode; the marketplace listing is public.
	productGroup := api.Group("/products", r.authMW.OptionalAuthenticate)
	{
		productGroup.GET("", r.product.List)
		productGroup.GET("/all", r.product.ListAll)
		productGroup.POST("", r.product.Create, r.authMW.RequireApproved)
		productGroup.GET("/:id", r.product.Get)
		productGroup.PUT("/:id", r.product.Update, r.authMW.RequireApproved)
		productGroup.DELETE("/:id", r.product.Delete, r.authMW.RequireApproved)
		productGroup.GET("/:id/qrcode", r.product.QRCode)
	}

	// Order routes require a logged-in client
	orderGroup := api.Group("/orders", r.authMW.Authenticate)
	{
		orderGroup.POST("", r.order.Create, r.authMW.RequireRole(entity.RoleClient))
		orderGroup.GET("/mine", r.order.ListMine, r.authMW.RequireRole(entity.RoleClient))
	}

	// Dashboard routes share the product tenant resolution
	dashboardGroup := api.Group("/dashboard", r.authMW.OptionalAuthenticate)
	{
		dashboardGroup.GET("/orders", r.dashboard.Orders)
		dashboardGroup.GET("/customers", r.dashboard.Customers)
		dashboardGroup.GET("/kpis", r.dashboard.KPIs)
	}

	// Public directory and the support-link workflow
	api.GET("/startups", r.directory.ListStartups)
	api.GET("/structures", r.directory.ListStructures)
	api.GET("/startups/support-structures", r.directory.ListSupportStructures,
		r.authMW.OptionalAuthenticate)
	api.POST("/startups/:id/support-requests", r.directory.RequestSupport,
		r.authMW.Authenticate, r.authMW.RequireRole(entity.RoleStructure), r.authMW.RequireApproved)
	api.POST("/support-requests/:id/respond", r.directory.RespondSupport,
		r.authMW.Authenticate, r.authMW.RequireRole(entity.RoleStartup))

	// Discount routes: tenant scoped like products
	discountGroup := api.Group("/discounts", r.authMW.OptionalAuthenticate)
	{
		discountGroup.GET("", r.discount.List)
		discountGroup.POST("", r.discount.Create, r.authMW.RequireApproved)
		discountGroup.DELETE("/:id", r.discount.Delete, r.authMW.RequireApproved)
	}

	// Ad-hoc image uploads
	uploadGroup := api.Group("/upload")
	{
		uploadGroup.POST("/upload-image", r.upload.UploadImage)
		uploadGroup.POST("/upload-images", r.upload.UploadImages)
		uploadGroup.GET("/test-image/:filename", r.upload.TestImage)
	}

	// Typed resource storage
	storageGroup := api.Group("/storage", r.authMW.Authenticate)
	{
		storageGroup.POST("/:type", r.upload.StoreResource)
		storageGroup.DELETE("/:type/:id/:fileName", r.upload.DeleteResource)
	}
}
