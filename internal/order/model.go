package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

type Order struct {
	ID             int64          `json:"id,omitempty"`
	CustomerID     int64          `json:"customer_id"`
	OrderType      OrderType      `json:"order_type"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	// nil means unscheduled
	Datetime *time.Time `json:"datetime,omitempty"`
	// Items keep insertion order and are immutable once the order exists.
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
}

// Item is a line of an order. It has no identity of its own.
type Item struct {
	ProductID int64 `json:"product_id" validate:"required" example:"1"`
	Quantity  int   `json:"quantity"   validate:"gt=0,lte=10000" example:"2"`
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = append([]Item(nil), o.Items...)
	}
	if o.Datetime != nil {
		dt := *o.Datetime
		out.Datetime = &dt
	}
	return out
}

// Form is the payload used to create an order with its full item list.
// swagger:model OrderForm
type Form struct {
	CustomerID     int64          `json:"customer_id"     validate:"required"                       example:"1"`
	OrderType      OrderType      `json:"order_type"      validate:"oneof=pickup delivery"          example:"pickup"`
	PaymentStatus  PaymentStatus  `json:"payment_status"  validate:"oneof=not_paid paid"            example:"not_paid"`
	DeliveryStatus DeliveryStatus `json:"delivery_status" validate:"oneof=not_delivered delivered"  example:"not_delivered"`
	// RFC 3339 or YYYY-MM-DDTHH:MM; empty means unscheduled
	Datetime string `json:"datetime" validate:"omitempty,timestamp" example:"2025-03-01T10:30"`
	Items    []Item `json:"items"    validate:"min=1,dive"`
}

// NewForm returns the defaults of a new order: pickup, not paid, not delivered, no items.
func NewForm() Form {
	return Form{
		OrderType:      Pickup,
		PaymentStatus:  NotPaid,
		DeliveryStatus: NotDelivered,
		Items:          []Item{},
	}
}

func (f Form) Validate() validate.Errors {
	return validate.Struct(f)
}

// ToOrder converts a validated form into an unpersisted order without a total.
func (f Form) ToOrder() (Order, error) {
	o := Order{
		CustomerID:     f.CustomerID,
		OrderType:      f.OrderType,
		PaymentStatus:  f.PaymentStatus,
		DeliveryStatus: f.DeliveryStatus,
		Items:          append([]Item{}, f.Items...),
	}
	if f.Datetime != "" {
		t, err := validate.ParseTime(f.Datetime)
		if err != nil {
			return Order{}, err
		}
		o.Datetime = &t
	}
	return o, nil
}

// FromOrder builds a form from an existing order (used to clone an order).
func FromOrder(o Order) Form {
	f := Form{
		CustomerID:     o.CustomerID,
		OrderType:      o.OrderType,
		PaymentStatus:  o.PaymentStatus,
		DeliveryStatus: o.DeliveryStatus,
		Items:          append([]Item{}, o.Items...),
	}
	if o.Datetime != nil {
		f.Datetime = o.Datetime.Format(time.RFC3339)
	}
	return f
}
