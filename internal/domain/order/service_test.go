package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePricing(t *testing.T) {
	p := ComputePricing(100, 40)
	assert.Equal(t, int64(100), p.Subtotal)
	assert.Equal(t, int64(40), p.DeliveryFee)
	assert.Equal(t, int64(140), p.Total)

	p = ComputePricing(0, 40)
	assert.Equal(t, int64(40), p.Total)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentMethodUPI))
	assert.True(t, ValidPaymentMethod(PaymentMethodCOD))
	assert.True(t, ValidPaymentMethod(PaymentMethodCard))
	assert.False(t, ValidPaymentMethod("PAYPAL"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("upi")) // case sensitive
}

func TestPlaceProductOrderRequestValidate(t *testing.T) {
	req := &PlaceProductOrderRequest{
		DeliverySlotID:  "slot-1",
		DeliveryAddress: "12 Main Street",
		PaymentMethod:   PaymentMethodCOD,
	}
	require.NoError(t, req.Validate())

	req.DeliveryAddress = "   "
	assert.Error(t, req.Validate())

	req.DeliveryAddress = "12 Main Street"
	req.PaymentMethod = "WIRE"
	assert.Error(t, req.Validate())
}

func TestPlaceCartOrderRequestValidate(t *testing.T) {
	req := &PlaceCartOrderRequest{
		DeliverySlotID:  "slot-1",
		DeliveryAddress: "12 Main Street",
		Email:           "shopper@example.com",
		Phone:           "9876543210",
		PaymentMethod:   PaymentMethodUPI,
	}
	require.NoError(t, req.Validate())

	req.Phone = " "
	assert.Error(t, req.Validate())

	req.Phone = "9876543210"
	req.DeliveryAddress = ""
	assert.Error(t, req.Validate())
}

func TestNewOrderNumber(t *testing.T) {
	a := NewOrderNumber()
	b := NewOrderNumber()

	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.Len(t, a, len("ORD-20060102-")+8)
	assert.NotEqual(t, a, b)
}

func TestOrderSubtotal(t *testing.T) {
	o := Order{TotalAmount: 140, DeliveryFee: 40}
	assert.Equal(t, int64(100), o.Subtotal())
}

func TestCanBeCancelled(t *testing.T) {
	assert.True(t, (&Order{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Order{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusDelivered}).CanBeCancelled())
	assert.False(t, (&Order{Status: StatusCancelled}).CanBeCancelled())
}
