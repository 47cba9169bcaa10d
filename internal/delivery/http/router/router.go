// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SessionHandler  *handler.SessionHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sessionHandler  *handler.SessionHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sessionHandler:  params.SessionHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Session routes; GetSession is readable before sign-in so clients can
	// render the unauthenticated state.
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.PUT("/active-role", r.sessionHandler.SetActiveRole)
		sessionGroup.POST("/roles", r.sessionHandler.ActivateRole, r.authMiddleware.Authenticate)
	}

	// Cart routes; the cart is local to this client, no authentication needed.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Checkout requires a signed-in identity; the resolver enforces it, the
	// middleware just rejects unauthenticated requests early.
	e.POST("/checkout", r.checkoutHandler.Checkout, r.authMiddleware.Authenticate)

	// Order routes require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id/qr", r.orderHandler.OrderQR)
	}

	// Vendor routes require authentication and a vendor role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleSeller.String(), entity.RoleSupplier.String()))
	{
		vendorGroup.GET("/products", r.catalogHandler.ListVendorProducts)
		vendorGroup.POST("/products", r.catalogHandler.CreateProduct)
	}
}
