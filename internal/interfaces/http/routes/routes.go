// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/cartigo-backend/internal/config"
	"github.com/your-org/cartigo-backend/internal/interfaces/http/handlers"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupCatalogRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, redisClient, cfg)
	SetupCheckoutRoutes(rg, db, redisClient, cfg)
	SetupOrderRoutes(rg, db, redisClient, cfg)
}

// SetupCatalogRoutes sets up category, store, product and delivery slot
// routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/stores", catalogHandler.GetStores)
	rg.GET("/delivery-slots", catalogHandler.GetDeliverySlots)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up session cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up the two checkout flows
func SetupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, cfg)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/product/:id", checkoutHandler.GetProductQuote)
		checkout.POST("/product/:id", checkoutHandler.PlaceProductOrder)
		checkout.GET("/cart", checkoutHandler.GetCartQuote)
		checkout.POST("/cart", checkoutHandler.PlaceCartOrder)
	}
}

// SetupOrderRoutes sets up order read routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)

	orders := rg.Group("/orders")
	{
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
