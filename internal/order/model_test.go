package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, Pickup, f.OrderType)
	assert.Equal(t, NotPaid, f.PaymentStatus)
	assert.Equal(t, NotDelivered, f.DeliveryStatus)
	assert.Empty(t, f.Items)
	assert.Empty(t, f.Datetime)
}

func TestForm_EmptyItemsRejected(t *testing.T) {
	f := NewForm()
	f.CustomerID = 1
	ve := f.Validate()
	assert.Len(t, ve, 1)
	assert.Contains(t, ve, "items")
}

func TestForm_CustomerRequired(t *testing.T) {
	f := NewForm()
	f.Items = []Item{{ProductID: 1, Quantity: 1}}
	ve := f.Validate()
	assert.Len(t, ve, 1)
	assert.Contains(t, ve, "customer_id")
}

func TestForm_ItemRules(t *testing.T) {
	f := NewForm()
	f.CustomerID = 1
	f.Items = []Item{{ProductID: 1, Quantity: 1}, {ProductID: 0, Quantity: 0}}
	ve := f.Validate()
	assert.Contains(t, ve, "items[1].product_id")
	assert.Contains(t, ve, "items[1].quantity")
	assert.NotContains(t, ve, "items[0].product_id")
}

func TestForm_QuantityUpperBound(t *testing.T) {
	f := NewForm()
	f.CustomerID = 1
	f.Items = []Item{{ProductID: 1, Quantity: 10000}, {ProductID: 2, Quantity: 10001}}
	ve := f.Validate()
	assert.Len(t, ve, 1)
	assert.Equal(t, "must be at most 10000", ve["items[1].quantity"])
}

func TestForm_EnumAndDatetime(t *testing.T) {
	f := NewForm()
	f.CustomerID = 1
	f.Items = []Item{{ProductID: 1, Quantity: 1}}
	f.PaymentStatus = "refunded"
	f.Datetime = "tomorrow"
	ve := f.Validate()
	assert.Contains(t, ve, "payment_status")
	assert.Contains(t, ve, "datetime")
}

func TestForm_ToOrder(t *testing.T) {
	f := NewForm()
	f.CustomerID = 4
	f.Items = []Item{{ProductID: 2, Quantity: 3}}
	f.Datetime = "2025-03-01T10:30"
	require.True(t, f.Validate().OK())

	o, err := f.ToOrder()
	require.NoError(t, err)
	assert.Equal(t, int64(4), o.CustomerID)
	assert.Equal(t, f.Items, o.Items)
	require.NotNil(t, o.Datetime)
	assert.Equal(t, 10, o.Datetime.Hour())

	f.Items[0].Quantity = 9
	assert.Equal(t, 3, o.Items[0].Quantity)
}

func TestForm_ToOrderUnscheduled(t *testing.T) {
	f := NewForm()
	o, err := f.ToOrder()
	require.NoError(t, err)
	assert.Nil(t, o.Datetime)
}

func TestFromOrder(t *testing.T) {
	o := sampleOrder()
	f := FromOrder(o)
	assert.Equal(t, o.CustomerID, f.CustomerID)
	assert.Equal(t, o.Items, f.Items)
	assert.Equal(t, "2025-03-01T10:30:00Z", f.Datetime)
	assert.True(t, f.Validate().OK())
}
