// internal/domain/order/entity.go
package order

import (
	"time"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod represents the shopper's payment method choice
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "CARD"
)

// ValidPaymentMethod reports whether the method is one of the supported
// choices.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCOD, PaymentMethodCard:
		return true
	}
	return false
}

// Order represents a placed order. Single-product checkout sets ProductID;
// cart-wide checkout leaves it null and Quantity carries the cart's item
// count.
type Order struct {
	ID             string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderNumber    string  `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	UserID         *string `gorm:"type:uuid;index" json:"user_id,omitempty"` // Nullable for guest orders
	ProductID      *string `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Quantity       int     `gorm:"not null;default:1" json:"quantity"`
	DeliverySlotID *string `gorm:"type:uuid;index" json:"delivery_slot_id,omitempty"`

	// Contact and fulfillment
	DeliveryAddress string        `gorm:"not null;type:text" json:"delivery_address"`
	Email           string        `gorm:"size:255" json:"email,omitempty"`
	Phone           string        `gorm:"size:20" json:"phone,omitempty"`
	PaymentMethod   PaymentMethod `gorm:"not null;size:10" json:"payment_method"`
	Status          Status        `gorm:"not null;default:'pending'" json:"status"`

	// Financial information, in the smallest currency unit
	TotalAmount int64 `gorm:"not null" json:"total_amount"`
	DeliveryFee int64 `gorm:"default:0" json:"delivery_fee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Order) TableName() string { return "orders" }

// Subtotal returns the order total before the delivery fee.
func (o *Order) Subtotal() int64 {
	return o.TotalAmount - o.DeliveryFee
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
