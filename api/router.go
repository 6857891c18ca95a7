package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saree-shop/api/handlers"
	"saree-shop/api/middleware"
	"saree-shop/internal/services"
)

// Dependencies are the services and settings the router needs.
type Dependencies struct {
	Products *services.ProductService
	Users    *services.UserService
	Sessions *services.SessionService
	Carts    *services.CartService
	Orders   *services.OrderService

	Cookie      handlers.SessionCookie
	BcryptCost  int
	CORSOrigins []string
	Debug       bool
}

func NewRouter(deps Dependencies) *gin.Engine {
	productHandler := handlers.NewProductHandler(deps.Products)
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Sessions, deps.Cookie, deps.BcryptCost)
	addressHandler := handlers.NewAddressHandler(deps.Users)
	cartHandler := handlers.NewCartHandler(deps.Carts)
	orderHandler := handlers.NewOrderHandler(deps.Orders)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	requireAuth := middleware.RequireAuth(deps.Sessions, deps.Cookie.Name)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProductByID)
		}

		api.POST("/cart/quote", cartHandler.Quote)

		addresses := api.Group("/addresses", requireAuth)
		{
			addresses.GET("", addressHandler.ListAddresses)
			addresses.POST("", addressHandler.AddAddress)
			addresses.PATCH("/:id", addressHandler.UpdateAddress)
			addresses.DELETE("/:id", addressHandler.DeleteAddress)
		}

		// Order routes
		orders := api.Group("/orders", requireAuth)
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Health check
		api.GET("/health", productHandler.HealthCheck)
	}

	// Debug endpoints in development
	if deps.Debug {
		router.GET("/debug/metrics", orderHandler.Metrics)
	}

	return router
}
