// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// DefaultStoreID is used when an item is added without a known store.
const DefaultStoreID = "default"

// Item represents one line of a shopping cart. Name, price and image are
// captured at the time the item is first added and never change while the
// item stays in the cart.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"` // Unit price in the smallest currency unit
	OriginalPrice *int64    `json:"original_price,omitempty"`
	Image         string    `json:"image"`
	Quantity      int       `json:"quantity"`
	StoreID       string    `json:"store_id"`
	StoreName     string    `json:"store_name,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// Cart is the ordered collection of items for one shopper session.
// Items are keyed by product id; insertion order is the display order.
// Every present item has quantity >= 1 and there is at most one item per id.
// All mutations are total: they never fail.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty cart for the given session.
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem adds an item to the cart. If an item with the same id already
// exists, the quantities accumulate and the existing name, price, image and
// store fields win. Otherwise the item is appended preserving insertion
// order. A non-positive incoming quantity is treated as 1.
func (c *Cart) AddItem(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.StoreID == "" {
		item.StoreID = DefaultStoreID
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			c.touch()
			return
		}
	}

	item.AddedAt = time.Now().UTC()
	c.Items = append(c.Items, item)
	c.touch()
}

// RemoveItem removes the item with the matching id. Removing an absent id
// is a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the item with the given id.
// A quantity of zero or below removes the item instead, keeping the
// quantity >= 1 invariant. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}

	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.touch()
}

// ItemCount returns the sum of quantities across all items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price * quantity across all items. Only the
// captured unit price contributes; the original (pre-discount) price is
// display-only.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount int   `json:"item_count"` // Sum of all quantities
	Total     int64 `json:"total"`      // Sum of price * quantity
}
