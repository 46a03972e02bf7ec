// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/cartigo-backend/internal/config"
	"github.com/your-org/cartigo-backend/internal/domain/cart"
	"github.com/your-org/cartigo-backend/internal/domain/catalog"
	"github.com/your-org/cartigo-backend/internal/domain/order"
	"gorm.io/gorm"
)

// OrderHandler handles order read endpoints
type OrderHandler struct {
	orderService *order.Service
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *OrderHandler {
	catalogService := catalog.NewService(db, cfg)
	cartService := cart.NewService(cart.NewRedisStore(redisClient, cfg.Storefront.CartSessionTTL))
	return &OrderHandler{
		orderService: order.NewService(db, cfg, catalogService, cartService),
		config:       cfg,
	}
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	placed, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}
