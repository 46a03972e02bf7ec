// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"
)

// Service handles cart business logic. Each operation loads the session
// cart, applies one mutation on the container and saves the result. All
// mutations for a session arrive one at a time from the shopper's own
// actions, so there is no writer contention to arbitrate.
type Service struct {
	store Store
}

// NewService creates a new cart service
func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Snapshot represents a read-only view of a session cart with its totals.
type Snapshot struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateItemRequest represents update cart item request
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

func snapshot(c *Cart) *Snapshot {
	return &Snapshot{
		SessionID: c.SessionID,
		Items:     c.Items,
		Totals: Totals{
			ItemCount: c.ItemCount(),
			Total:     c.Total(),
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return snapshot(c), nil
}

// AddItem adds an item to the session cart and returns the updated cart
func (s *Service) AddItem(ctx context.Context, sessionID string, item Item) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	c.AddItem(item)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// UpdateItem replaces the quantity of a cart item. A quantity of zero
// removes the item.
func (s *Service) UpdateItem(ctx context.Context, sessionID, itemID string, quantity int) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	c.UpdateQuantity(itemID, quantity)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// RemoveItem removes an item from the session cart
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	c.RemoveItem(itemID)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return snapshot(c), nil
}

// ClearCart removes all items from the session cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// ItemCount returns the sum of quantities in the session cart
func (s *Service) ItemCount(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return c.ItemCount(), nil
}
