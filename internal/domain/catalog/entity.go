// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/lib/pq"
)

// Category represents a browsable product category
type Category struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Icon      string    `gorm:"not null;size:50" json:"icon"` // One of the Icon variants
	CreatedAt time.Time `json:"created_at"`
}

// Store represents a seller entity that owns one or more products
type Store struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Location  string    `gorm:"not null;size:255" json:"location"`
	Address   string    `gorm:"not null;size:500" json:"address"`
	Rating    float64   `gorm:"default:0" json:"rating"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	ImageURL  *string   `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a purchasable product
type Product struct {
	ID              string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string         `gorm:"not null;size:255" json:"name"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	Price           int64          `gorm:"not null" json:"price"` // Price in the smallest currency unit
	OriginalPrice   *int64         `json:"original_price,omitempty"`
	CategoryID      *string        `gorm:"type:uuid;index" json:"category_id,omitempty"`
	StoreID         *string        `gorm:"type:uuid;index" json:"store_id,omitempty"`
	Images          pq.StringArray `gorm:"type:text[]" json:"images"`
	OpenBoxDelivery bool           `gorm:"default:false" json:"open_box_delivery"`
	ReturnPolicy    string         `gorm:"size:255;default:'7-day return'" json:"return_policy"`
	Stock           int            `gorm:"default:0" json:"stock"`
	CreatedAt       time.Time      `json:"created_at"`

	// Relationships
	Store *Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"store,omitempty"`
}

// DeliverySlot represents a named, time-bounded fulfillment window
type DeliverySlot struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Label     string    `gorm:"not null;size:100" json:"label"`
	StartTime string    `gorm:"not null;size:20" json:"start_time"`
	EndTime   string    `gorm:"not null;size:20" json:"end_time"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Category) TableName() string     { return "categories" }
func (Store) TableName() string        { return "stores" }
func (Product) TableName() string      { return "products" }
func (DeliverySlot) TableName() string { return "delivery_slots" }

// PrimaryImage returns the first product image, or empty when none exist.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// DiscountPercent computes the display-only discount between the original
// and current price. It returns 0 when no original price is set or when it
// does not exceed the current price.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice == 0 {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) * 100 / *p.OriginalPrice)
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
