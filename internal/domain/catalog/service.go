// internal/domain/catalog/service.go
package catalog

import (
	"fmt"

	"github.com/your-org/cartigo-backend/internal/config"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = fmt.Errorf("product not found")

// Service handles catalog read queries
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit"`
	CategoryID string `form:"category_id"`
	StoreID    string `form:"store_id"`
}

// ProductListResponse represents a page of products
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ListCategories retrieves all categories with normalized icon names
func (s *Service) ListCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	for i := range categories {
		categories[i].Icon = ParseIcon(categories[i].Icon).String()
	}

	return categories, nil
}

// ListStores retrieves the top rated stores, limited to the storefront
// store limit unless a smaller limit is requested
func (s *Service) ListStores(limit int) ([]Store, error) {
	if limit <= 0 || limit > s.config.Storefront.StoreLimit {
		limit = s.config.Storefront.StoreLimit
	}

	var stores []Store
	err := s.db.Order("rating DESC, created_at ASC").Limit(limit).Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stores: %w", err)
	}

	return stores, nil
}

// ListProducts retrieves products with store details, optional category and
// store filters, and pagination
func (s *Service) ListProducts(req *ProductListRequest) (*ProductListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = s.config.Storefront.ProductLimit
	}

	query := s.db.Model(&Product{}).Preload("Store")

	if req.CategoryID != "" {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.StoreID != "" {
		query = query.Where("store_id = ?", req.StoreID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []Product
	offset := (req.Page - 1) * req.Limit
	err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ProductListResponse{
		Products: products,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetProduct retrieves a single product with its store details
func (s *Service) GetProduct(id string) (*Product, error) {
	var product Product
	err := s.db.Preload("Store").Where("id = ?", id).First(&product).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return &product, nil
}

// ListActiveDeliverySlots retrieves delivery slots available for selection
func (s *Service) ListActiveDeliverySlots() ([]DeliverySlot, error) {
	var slots []DeliverySlot
	err := s.db.Where("active = ?", true).Order("start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve delivery slots: %w", err)
	}

	return slots, nil
}

// GetActiveDeliverySlot retrieves one active slot by id
func (s *Service) GetActiveDeliverySlot(id string) (*DeliverySlot, error) {
	var slot DeliverySlot
	err := s.db.Where("id = ? AND active = ?", id, true).First(&slot).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("delivery slot not found or inactive")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve delivery slot: %w", err)
	}

	return &slot, nil
}
