package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	carts map[string]*Cart
	err   error
}

func newMockStore() *mockStore {
	return &mockStore{carts: make(map[string]*Cart)}
}

func (m *mockStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	if c, ok := m.carts[sessionID]; ok {
		return c, nil
	}
	return New(sessionID), nil
}

func (m *mockStore) Save(_ context.Context, c *Cart) error {
	if m.err != nil {
		return m.err
	}
	m.carts[c.SessionID] = c
	return nil
}

func (m *mockStore) Delete(_ context.Context, sessionID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.carts, sessionID)
	return nil
}

func TestServiceAddItemPersists(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	snap, err := svc.AddItem(ctx, "sess-1", item("p1", 100, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Totals.ItemCount)

	snap, err = svc.AddItem(ctx, "sess-1", item("p1", 100, 2))
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, int64(300), snap.Totals.Total)
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", item("p1", 100, 1))
	require.NoError(t, err)

	snap, err := svc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.Totals.ItemCount)
}

func TestServiceUpdateItem(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", item("a", 50, 2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", item("b", 30, 1))
	require.NoError(t, err)

	snap, err := svc.UpdateItem(ctx, "sess-1", "a", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Totals.ItemCount)
	assert.Equal(t, int64(280), snap.Totals.Total)

	// Zero quantity removes the line
	snap, err = svc.UpdateItem(ctx, "sess-1", "a", 0)
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "b", snap.Items[0].ID)
}

func TestServiceRemoveItem(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", item("a", 50, 2))
	require.NoError(t, err)

	snap, err := svc.RemoveItem(ctx, "sess-1", "a")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)

	// Absent id stays a no-op
	snap, err = svc.RemoveItem(ctx, "sess-1", "a")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestServiceClearCart(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", item("a", 50, 2))
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "sess-1"))

	snap, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Equal(t, int64(0), snap.Totals.Total)

	count, err := svc.ItemCount(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestServiceStoreFailure(t *testing.T) {
	store := newMockStore()
	store.err = errors.New("redis down")
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.GetCart(ctx, "sess-1")
	assert.Error(t, err)

	_, err = svc.AddItem(ctx, "sess-1", item("a", 50, 1))
	assert.Error(t, err)

	assert.Error(t, svc.ClearCart(ctx, "sess-1"))
}
