// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/cartigo-backend/internal/config"
	"github.com/your-org/cartigo-backend/internal/domain/cart"
	"github.com/your-org/cartigo-backend/internal/domain/catalog"
	"github.com/your-org/cartigo-backend/internal/domain/order"
	"github.com/your-org/cartigo-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// CheckoutHandler handles the single-product and cart-wide checkout flows
type CheckoutHandler struct {
	orderService *order.Service
	config       *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CheckoutHandler {
	catalogService := catalog.NewService(db, cfg)
	cartService := cart.NewService(cart.NewRedisStore(redisClient, cfg.Storefront.CartSessionTTL))
	return &CheckoutHandler{
		orderService: order.NewService(db, cfg, catalogService, cartService),
		config:       cfg,
	}
}

// GetProductQuote handles GET /checkout/product/:id
func (h *CheckoutHandler) GetProductQuote(c *gin.Context) {
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil {
			quantity = parsed
		}
	}

	quote, err := h.orderService.GetProductQuote(c.Param("id"), quantity)
	if err == catalog.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    quote,
	})
}

// PlaceProductOrder handles POST /checkout/product/:id
func (h *CheckoutHandler) PlaceProductOrder(c *gin.Context) {
	var req order.PlaceProductOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.PlaceProductOrder(c.Param("id"), &req)
	if err != nil {
		status := http.StatusBadRequest
		if err == catalog.ErrProductNotFound {
			status = http.StatusNotFound
		} else if strings.Contains(err.Error(), "failed to place order") {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetCartQuote handles GET /checkout/cart
func (h *CheckoutHandler) GetCartQuote(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	quote, err := h.orderService.GetCartQuote(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    quote,
	})
}

// PlaceCartOrder handles POST /checkout/cart
func (h *CheckoutHandler) PlaceCartOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req order.PlaceCartOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.PlaceCartOrder(c.Request.Context(), sessionID, &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "failed to place order") {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}
