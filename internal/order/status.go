package order

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned for a literal outside the two recognised values.
var ErrInvalidStatus = errors.New("invalid status value")

type OrderType string

const (
	Pickup   OrderType = "pickup"
	Delivery OrderType = "delivery"
)

type PaymentStatus string

const (
	NotPaid PaymentStatus = "not_paid"
	Paid    PaymentStatus = "paid"
)

type DeliveryStatus string

const (
	NotDelivered DeliveryStatus = "not_delivered"
	Delivered    DeliveryStatus = "delivered"
)

// legacy literals sent by the first version of the dashboard
const (
	legacyNotPaid      = "notPaid"
	legacyNotDelivered = "notDelivered"
)

func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(s); t {
	case Pickup, Delivery:
		return t, nil
	}
	return "", fmt.Errorf("%w: order_type %q", ErrInvalidStatus, s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if s == legacyNotPaid {
		return NotPaid, nil
	}
	switch p := PaymentStatus(s); p {
	case NotPaid, Paid:
		return p, nil
	}
	return "", fmt.Errorf("%w: payment_status %q", ErrInvalidStatus, s)
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	if s == legacyNotDelivered {
		return NotDelivered, nil
	}
	switch d := DeliveryStatus(s); d {
	case NotDelivered, Delivered:
		return d, nil
	}
	return "", fmt.Errorf("%w: delivery_status %q", ErrInvalidStatus, s)
}

func (t OrderType) Valid() bool      { return t == Pickup || t == Delivery }
func (p PaymentStatus) Valid() bool  { return p == NotPaid || p == Paid }
func (d DeliveryStatus) Valid() bool { return d == NotDelivered || d == Delivered }

// Toggle returns the other value of the pair.
func (t OrderType) Toggle() OrderType {
	if t == Delivery {
		return Pickup
	}
	return Delivery
}

func (p PaymentStatus) Toggle() PaymentStatus {
	if p == Paid {
		return NotPaid
	}
	return Paid
}

func (d DeliveryStatus) Toggle() DeliveryStatus {
	if d == Delivered {
		return NotDelivered
	}
	return Delivered
}

// UnmarshalJSON maps the legacy camelCase literals onto the canonical ones.
// Unknown literals are kept as-is so validation can report them.
func (p *PaymentStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == legacyNotPaid {
		s = string(NotPaid)
	}
	*p = PaymentStatus(s)
	return nil
}

func (d *DeliveryStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == legacyNotDelivered {
		s = string(NotDelivered)
	}
	*d = DeliveryStatus(s)
	return nil
}

// Any value may move to the other one at any time; the Apply helpers only
// reject unknown literals and never touch the other two fields.

func ApplyOrderType(o Order, t OrderType) (Order, error) {
	if !t.Valid() {
		return Order{}, fmt.Errorf("%w: order_type %q", ErrInvalidStatus, t)
	}
	out := o.Clone()
	out.OrderType = t
	return out, nil
}

func ApplyPaymentStatus(o Order, p PaymentStatus) (Order, error) {
	if !p.Valid() {
		return Order{}, fmt.Errorf("%w: payment_status %q", ErrInvalidStatus, p)
	}
	out := o.Clone()
	out.PaymentStatus = p
	return out, nil
}

func ApplyDeliveryStatus(o Order, d DeliveryStatus) (Order, error) {
	if !d.Valid() {
		return Order{}, fmt.Errorf("%w: delivery_status %q", ErrInvalidStatus, d)
	}
	out := o.Clone()
	out.DeliveryStatus = d
	return out, nil
}

// StatusChanges lists the single-field updates needed to go from one order to another.
// A nil pointer means the field is unchanged.
type StatusChanges struct {
	OrderType      *OrderType
	PaymentStatus  *PaymentStatus
	DeliveryStatus *DeliveryStatus
}

func (c StatusChanges) Empty() bool {
	return c.OrderType == nil && c.PaymentStatus == nil && c.DeliveryStatus == nil
}

// Changes compares the three mutable fields of original and edited.
func Changes(original, edited Order) StatusChanges {
	var c StatusChanges
	if original.OrderType != edited.OrderType {
		t := edited.OrderType
		c.OrderType = &t
	}
	if original.PaymentStatus != edited.PaymentStatus {
		p := edited.PaymentStatus
		c.PaymentStatus = &p
	}
	if original.DeliveryStatus != edited.DeliveryStatus {
		d := edited.DeliveryStatus
		c.DeliveryStatus = &d
	}
	return c
}
