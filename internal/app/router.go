package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripmate/internal/handler"
	"tripmate/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PaymentHandler *handler.PaymentHandler
	BookingHandler *handler.BookingHandler
	Authenticator  middleware.Authenticator
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Compatibility routes for released app builds and the gateway checkout
	// callback. No auth; error bodies match the old standalone server.
	router.POST("/create-order", deps.PaymentHandler.CreateOrderCompat)
	router.POST("/verify-payment", deps.PaymentHandler.VerifyPaymentCompat)

	// API v1 routes. All require a verified caller identity.
	v1 := router.Group("/v1")
	v1.Use(middleware.AuthMiddleware(deps.Authenticator))
	{
		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.POST("/orders", deps.PaymentHandler.CreateOrder)
			payments.POST("/verify", deps.PaymentHandler.VerifyPayment)
		}

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.GET("/:id", deps.BookingHandler.GetBooking)
		}
	}

	return router
}
