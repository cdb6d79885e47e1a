package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() Order {
	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	return Order{
		ID:             7,
		CustomerID:     3,
		OrderType:      Delivery,
		PaymentStatus:  NotPaid,
		DeliveryStatus: NotDelivered,
		Datetime:       &at,
		Items:          []Item{{ProductID: 1, Quantity: 2}},
	}
}

func TestApplyPaymentStatus_OnlyChangesPayment(t *testing.T) {
	o := sampleOrder()
	got, err := ApplyPaymentStatus(o, Paid)
	require.NoError(t, err)

	assert.Equal(t, Paid, got.PaymentStatus)
	assert.Equal(t, o.DeliveryStatus, got.DeliveryStatus)
	assert.Equal(t, o.OrderType, got.OrderType)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, NotPaid, o.PaymentStatus, "input must not change")
}

func TestApply_ReturnsIndependentCopy(t *testing.T) {
	o := sampleOrder()
	got, err := ApplyDeliveryStatus(o, Delivered)
	require.NoError(t, err)

	got.Items[0].Quantity = 99
	*got.Datetime = got.Datetime.Add(time.Hour)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, 10, o.Datetime.Hour())
}

func TestApply_AnyTransitionAllowed(t *testing.T) {
	o := sampleOrder()
	for _, tt := range []OrderType{Pickup, Delivery, Pickup} {
		var err error
		o, err = ApplyOrderType(o, tt)
		require.NoError(t, err)
		assert.Equal(t, tt, o.OrderType)
	}
	o, err := ApplyPaymentStatus(o, Paid)
	require.NoError(t, err)
	o, err = ApplyPaymentStatus(o, NotPaid)
	require.NoError(t, err)
	assert.Equal(t, NotPaid, o.PaymentStatus)
}

func TestApply_RejectsUnknownLiteral(t *testing.T) {
	o := sampleOrder()
	_, err := ApplyPaymentStatus(o, PaymentStatus("refunded"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ApplyDeliveryStatus(o, DeliveryStatus(""))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ApplyOrderType(o, OrderType("shipping"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParse_AcceptsLegacyLiterals(t *testing.T) {
	p, err := ParsePaymentStatus("notPaid")
	require.NoError(t, err)
	assert.Equal(t, NotPaid, p)

	d, err := ParseDeliveryStatus("notDelivered")
	require.NoError(t, err)
	assert.Equal(t, NotDelivered, d)

	_, err = ParseOrderType("Pickup")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Paid, NotPaid.Toggle())
	assert.Equal(t, NotPaid, Paid.Toggle())
	assert.Equal(t, Delivered, NotDelivered.Toggle())
	assert.Equal(t, Pickup, Delivery.Toggle())
}

func TestUnmarshal_NormalisesLegacyLiterals(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"payment_status":"notPaid","delivery_status":"notDelivered","order_type":"pickup"}`), &o))
	assert.Equal(t, NotPaid, o.PaymentStatus)
	assert.Equal(t, NotDelivered, o.DeliveryStatus)
}

func TestChanges(t *testing.T) {
	o := sampleOrder()
	assert.True(t, Changes(o, o.Clone()).Empty())

	edited := o.Clone()
	edited.PaymentStatus = Paid
	ch := Changes(o, edited)
	require.NotNil(t, ch.PaymentStatus)
	assert.Equal(t, Paid, *ch.PaymentStatus)
	assert.Nil(t, ch.DeliveryStatus)
	assert.Nil(t, ch.OrderType)
}
