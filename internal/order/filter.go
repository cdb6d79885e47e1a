package order

import (
	"strconv"
	"strings"
)

// Filters narrows an order list. Empty fields are wildcards.
type Filters struct {
	// Search is matched as a substring of the order id and the customer id.
	Search         string
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	OrderType      OrderType
}

// Filter returns the orders matching every set filter, in input order.
func Filter(list []Order, f Filters) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		if Matches(o, f) {
			out = append(out, o)
		}
	}
	return out
}

func Matches(o Order, f Filters) bool {
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.DeliveryStatus != "" && o.DeliveryStatus != f.DeliveryStatus {
		return false
	}
	if f.OrderType != "" && o.OrderType != f.OrderType {
		return false
	}
	term := strings.ToLower(f.Search)
	if term == "" {
		return true
	}
	// unsaved orders have no id to match against
	if o.ID != 0 && strings.Contains(strconv.FormatInt(o.ID, 10), term) {
		return true
	}
	return strings.Contains(strconv.FormatInt(o.CustomerID, 10), term)
}
