package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderIDs(list []Order) []int64 {
	out := make([]int64, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := []Order{
		{ID: 12, CustomerID: 5, PaymentStatus: Paid, DeliveryStatus: NotDelivered, OrderType: Pickup},
		{ID: 3, CustomerID: 12, PaymentStatus: NotPaid, DeliveryStatus: Delivered, OrderType: Delivery},
		{ID: 40, CustomerID: 7, PaymentStatus: NotPaid, DeliveryStatus: NotDelivered, OrderType: Delivery},
	}

	assert.Equal(t, []int64{12, 3, 40}, orderIDs(Filter(list, Filters{})))
	assert.Equal(t, []int64{12, 3}, orderIDs(Filter(list, Filters{Search: "12"})))
	assert.Equal(t, []int64{3, 40}, orderIDs(Filter(list, Filters{PaymentStatus: NotPaid})))
	assert.Equal(t, []int64{40}, orderIDs(Filter(list, Filters{PaymentStatus: NotPaid, DeliveryStatus: NotDelivered})))
	assert.Equal(t, []int64{3}, orderIDs(Filter(list, Filters{Search: "1", OrderType: Delivery})))
	assert.Empty(t, Filter(list, Filters{Search: "999"}))
}

func TestFilter_SearchIsNotTrimmed(t *testing.T) {
	list := []Order{{ID: 1, CustomerID: 2}}
	assert.Empty(t, Filter(list, Filters{Search: " "}))
	assert.Empty(t, Filter(list, Filters{Search: " 1"}))
	assert.Len(t, Filter(list, Filters{Search: "1"}), 1)
}

func TestFilter_UnsavedOrderMatchesOnCustomerOnly(t *testing.T) {
	list := []Order{{CustomerID: 8}}
	assert.Empty(t, Filter(list, Filters{Search: "0"}))
	assert.Len(t, Filter(list, Filters{Search: "8"}), 1)
}
