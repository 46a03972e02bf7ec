// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/cartigo-backend/internal/config"
	"github.com/your-org/cartigo-backend/internal/domain/cart"
	"github.com/your-org/cartigo-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service handles checkout and order placement
type Service struct {
	db             *gorm.DB
	config         *config.Config
	catalogService *catalog.Service
	cartService    *cart.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, catalogService *catalog.Service, cartService *cart.Service) *Service {
	return &Service{
		db:             db,
		config:         cfg,
		catalogService: catalogService,
		cartService:    cartService,
	}
}

// Pricing represents the bill breakdown shown at checkout
type Pricing struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// ComputePricing applies the flat delivery fee to a subtotal.
func ComputePricing(subtotal, deliveryFee int64) Pricing {
	return Pricing{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}

// ProductQuote represents the single-product checkout page data
type ProductQuote struct {
	Product       *catalog.Product       `json:"product"`
	DeliverySlots []catalog.DeliverySlot `json:"delivery_slots"`
	Quantity      int                    `json:"quantity"`
	Pricing       Pricing                `json:"pricing"`
}

// CartQuote represents the cart-wide checkout page data
type CartQuote struct {
	Cart          *cart.Snapshot         `json:"cart"`
	DeliverySlots []catalog.DeliverySlot `json:"delivery_slots"`
	Pricing       Pricing                `json:"pricing"`
}

// PlaceProductOrderRequest represents the single-product checkout form
type PlaceProductOrderRequest struct {
	Quantity        int           `json:"quantity"`
	DeliverySlotID  string        `json:"delivery_slot_id" binding:"required"`
	DeliveryAddress string        `json:"delivery_address" binding:"required"`
	PaymentMethod   PaymentMethod `json:"payment_method" binding:"required"`
}

// PlaceCartOrderRequest represents the cart checkout form
type PlaceCartOrderRequest struct {
	DeliverySlotID  string        `json:"delivery_slot_id" binding:"required"`
	DeliveryAddress string        `json:"delivery_address" binding:"required"`
	Email           string        `json:"email" binding:"required,email"`
	Phone           string        `json:"phone" binding:"required"`
	PaymentMethod   PaymentMethod `json:"payment_method" binding:"required"`
}

// Validate checks the fields binding cannot express.
func (r *PlaceProductOrderRequest) Validate() error {
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		return fmt.Errorf("delivery address is required")
	}
	if !ValidPaymentMethod(r.PaymentMethod) {
		return fmt.Errorf("unsupported payment method: %s", r.PaymentMethod)
	}
	return nil
}

// Validate checks the fields binding cannot express.
func (r *PlaceCartOrderRequest) Validate() error {
	if strings.TrimSpace(r.DeliveryAddress) == "" {
		return fmt.Errorf("delivery address is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return fmt.Errorf("phone number is required")
	}
	if !ValidPaymentMethod(r.PaymentMethod) {
		return fmt.Errorf("unsupported payment method: %s", r.PaymentMethod)
	}
	return nil
}

// NewOrderNumber generates a unique order number.
// Format: ORD-YYYYMMDD-XXXXXXXX
func NewOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

// GetProductQuote builds the single-product checkout summary: the product,
// the active delivery slots and the bill with the flat delivery fee.
func (s *Service) GetProductQuote(productID string, quantity int) (*ProductQuote, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalogService.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	slots, err := s.catalogService.ListActiveDeliverySlots()
	if err != nil {
		return nil, err
	}

	return &ProductQuote{
		Product:       product,
		DeliverySlots: slots,
		Quantity:      quantity,
		Pricing:       ComputePricing(product.Price*int64(quantity), s.config.Storefront.DeliveryFee),
	}, nil
}

// GetCartQuote builds the cart checkout summary for a session.
func (s *Service) GetCartQuote(ctx context.Context, sessionID string) (*CartQuote, error) {
	snap, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slots, err := s.catalogService.ListActiveDeliverySlots()
	if err != nil {
		return nil, err
	}

	return &CartQuote{
		Cart:          snap,
		DeliverySlots: slots,
		Pricing:       ComputePricing(snap.Totals.Total, s.config.Storefront.DeliveryFee),
	}, nil
}

// PlaceProductOrder places a single-product order and writes it durably.
func (s *Service) PlaceProductOrder(productID string, req *PlaceProductOrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalogService.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock() {
		return nil, fmt.Errorf("product '%s' is out of stock", product.Name)
	}

	slot, err := s.catalogService.GetActiveDeliverySlot(req.DeliverySlotID)
	if err != nil {
		return nil, err
	}

	pricing := ComputePricing(product.Price*int64(quantity), s.config.Storefront.DeliveryFee)

	o := &Order{
		OrderNumber:     NewOrderNumber(),
		ProductID:       &product.ID,
		Quantity:        quantity,
		DeliverySlotID:  &slot.ID,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		PaymentMethod:   req.PaymentMethod,
		Status:          StatusConfirmed,
		TotalAmount:     pricing.Total,
		DeliveryFee:     pricing.DeliveryFee,
	}

	if err := s.db.Create(o).Error; err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	return o, nil
}

// PlaceCartOrder places an order for the whole session cart and clears the
// cart once the order row is written. ProductID stays null; Quantity
// carries the cart's total item count.
func (s *Service) PlaceCartOrder(ctx context.Context, sessionID string, req *PlaceCartOrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snap.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	slot, err := s.catalogService.GetActiveDeliverySlot(req.DeliverySlotID)
	if err != nil {
		return nil, err
	}

	pricing := ComputePricing(snap.Totals.Total, s.config.Storefront.DeliveryFee)

	o := &Order{
		OrderNumber:     NewOrderNumber(),
		Quantity:        snap.Totals.ItemCount,
		DeliverySlotID:  &slot.ID,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		PaymentMethod:   req.PaymentMethod,
		Status:          StatusConfirmed,
		TotalAmount:     pricing.Total,
		DeliveryFee:     pricing.DeliveryFee,
	}

	if err := s.db.Create(o).Error; err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// The cart is emptied automatically once the order flow completes.
	if err := s.cartService.ClearCart(ctx, sessionID); err != nil {
		return o, fmt.Errorf("order placed but failed to clear cart: %w", err)
	}

	return o, nil
}

// GetOrder retrieves a placed order by id
func (s *Service) GetOrder(id string) (*Order, error) {
	var o Order
	err := s.db.Where("id = ?", id).First(&o).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	return &o, nil
}
