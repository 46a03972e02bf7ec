package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIconKnownVariants(t *testing.T) {
	assert.Equal(t, IconSmartphone, ParseIcon("Smartphone"))
	assert.Equal(t, IconShirt, ParseIcon("Shirt"))
	assert.Equal(t, IconPackage, ParseIcon("Package"))
}

func TestParseIconFallback(t *testing.T) {
	assert.Equal(t, IconPackage, ParseIcon(""))
	assert.Equal(t, IconPackage, ParseIcon("NoSuchIcon"))
	assert.Equal(t, IconPackage, ParseIcon("smartphone")) // case sensitive
}

func TestIconValid(t *testing.T) {
	assert.True(t, IconLaptop.Valid())
	assert.False(t, Icon("Rocket").Valid())
}

func TestDiscountPercent(t *testing.T) {
	original := int64(200)
	p := Product{Price: 100, OriginalPrice: &original}
	assert.Equal(t, 50, p.DiscountPercent())

	original = int64(150)
	assert.Equal(t, 33, p.DiscountPercent())
}

func TestDiscountPercentWithoutOriginalPrice(t *testing.T) {
	p := Product{Price: 100}
	assert.Equal(t, 0, p.DiscountPercent())

	// Original price at or below current price is not a discount
	same := int64(100)
	p.OriginalPrice = &same
	assert.Equal(t, 0, p.DiscountPercent())

	lower := int64(80)
	p.OriginalPrice = &lower
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestPrimaryImage(t *testing.T) {
	p := Product{}
	assert.Equal(t, "", p.PrimaryImage())

	p.Images = []string{"first.jpg", "second.jpg"}
	assert.Equal(t, "first.jpg", p.PrimaryImage())
}

func TestInStock(t *testing.T) {
	assert.False(t, (&Product{Stock: 0}).InStock())
	assert.True(t, (&Product{Stock: 3}).InStock())
}
