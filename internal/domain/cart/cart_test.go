package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price int64, quantity int) Item {
	return Item{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Image:    "https://example.com/" + id + ".jpg",
		Quantity: quantity,
		StoreID:  "store-1",
	}
}

func TestAddItemDistinctIDs(t *testing.T) {
	c := New("sess-1")

	c.AddItem(item("a", 50, 2))
	c.AddItem(item("b", 30, 1))

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, int64(130), c.Total())
}

func TestAddItemSameIDAccumulatesQuantity(t *testing.T) {
	c := New("sess-1")

	first := item("p1", 100, 1)
	first.Name = "First Name"
	first.Image = "first.jpg"
	c.AddItem(first)

	second := item("p1", 999, 2)
	second.Name = "Second Name"
	second.Image = "second.jpg"
	c.AddItem(second)

	require.Len(t, c.Items, 1)
	got := c.Items[0]
	assert.Equal(t, 3, got.Quantity)

	// First-seen fields win
	assert.Equal(t, "First Name", got.Name)
	assert.Equal(t, int64(100), got.Price)
	assert.Equal(t, "first.jpg", got.Image)
	assert.Equal(t, int64(300), c.Total())
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 10, 1))
	c.AddItem(item("b", 20, 1))
	c.AddItem(item("c", 30, 1))
	c.AddItem(item("b", 20, 1)) // accumulate, no reorder

	require.Len(t, c.Items, 3)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, "b", c.Items[1].ID)
	assert.Equal(t, "c", c.Items[2].ID)
}

func TestAddItemNormalizes(t *testing.T) {
	c := New("sess-1")

	it := item("a", 10, 0)
	it.StoreID = ""
	c.AddItem(it)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, DefaultStoreID, c.Items[0].StoreID)
}

func TestUpdateQuantityReplaces(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 50, 2))
	c.AddItem(item("b", 30, 1))

	c.UpdateQuantity("a", 5)

	assert.Equal(t, 5, c.Items[0].Quantity) // exactly 5, not 2+5
	assert.Equal(t, 6, c.ItemCount())
	assert.Equal(t, int64(280), c.Total())
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 50, 2))
	c.AddItem(item("b", 30, 1))

	c.UpdateQuantity("a", 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)
	assert.Equal(t, 1, c.ItemCount())
	assert.Equal(t, int64(30), c.Total())

	c.UpdateQuantity("b", -3)
	assert.Empty(t, c.Items)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 50, 2))

	c.UpdateQuantity("missing", 5)

	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, int64(100), c.Total())
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 50, 2))

	c.RemoveItem("missing")
	assert.Equal(t, 2, c.ItemCount())

	c.RemoveItem("a")
	c.RemoveItem("a")
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount())
}

func TestClear(t *testing.T) {
	c := New("sess-1")
	c.AddItem(item("a", 50, 2))
	c.AddItem(item("b", 30, 1))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.Total())
}

func TestTotalIgnoresOriginalPrice(t *testing.T) {
	c := New("sess-1")

	original := int64(200)
	it := item("a", 100, 2)
	it.OriginalPrice = &original
	c.AddItem(it)

	assert.Equal(t, int64(200), c.Total())
}

func TestEmptyCartQueries(t *testing.T) {
	c := New("sess-1")

	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.Total())
	assert.Empty(t, c.Items)
}
