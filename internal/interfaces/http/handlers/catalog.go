// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/cartigo-backend/internal/config"
	"github.com/your-org/cartigo-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// CatalogHandler handles category, store, product and delivery slot
// endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// GetCategories handles GET /categories
//
// A failed read is logged and served as an empty list: the storefront
// renders "nothing here yet" rather than an error page.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve categories")
		categories = []catalog.Category{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetStores handles GET /stores
func (h *CatalogHandler) GetStores(c *gin.Context) {
	var req struct {
		Limit int `form:"limit"`
	}
	_ = c.ShouldBindQuery(&req)

	stores, err := h.catalogService.ListStores(req.Limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve stores")
		stores = []catalog.Store{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stores retrieved successfully",
		"data":    stores,
	})
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var req catalog.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.catalogService.ListProducts(&req)
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve products")
		response = &catalog.ProductListResponse{Products: []catalog.Product{}}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    response,
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err == catalog.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product":          product,
			"discount_percent": product.DiscountPercent(),
		},
	})
}

// GetDeliverySlots handles GET /delivery-slots
func (h *CatalogHandler) GetDeliverySlots(c *gin.Context) {
	slots, err := h.catalogService.ListActiveDeliverySlots()
	if err != nil {
		logrus.WithError(err).Error("Failed to retrieve delivery slots")
		slots = []catalog.DeliverySlot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery slots retrieved successfully",
		"data":    slots,
	})
}
