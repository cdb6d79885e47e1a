// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/order"
)

type Type string

const (
	OrderCreated       Type = "order.created"
	OrderStatusChanged Type = "order.status_changed"
	OrderDeleted       Type = "order.deleted"
)

// Event is the JSON value of every message. The message key is the order id,
// so all events of one order land in the same partition.
type Event struct {
	Type       Type             `json:"type"`
	OrderID    int64            `json:"order_id"`
	CustomerID int64            `json:"customer_id,omitempty"`
	Field      string           `json:"field,omitempty"`
	Value      string           `json:"value,omitempty"`
	Total      *decimal.Decimal `json:"total_amount,omitempty"`
	Items      []order.Item     `json:"items,omitempty"`
	Username   string           `json:"username,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

func (e Event) Key() string { return strconv.FormatInt(e.OrderID, 10) }

func Created(o order.Order, username string, at time.Time) Event {
	total := o.TotalAmount
	return Event{
		Type:       OrderCreated,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Total:      &total,
		Items:      o.Items,
		Username:   username,
		Timestamp:  at.UTC(),
	}
}

func StatusChanged(orderID int64, field, value, username string, at time.Time) Event {
	return Event{
		Type:      OrderStatusChanged,
		OrderID:   orderID,
		Field:     field,
		Value:     value,
		Username:  username,
		Timestamp: at.UTC(),
	}
}

func Deleted(orderID int64, username string, at time.Time) Event {
	return Event{Type: OrderDeleted, OrderID: orderID, Username: username, Timestamp: at.UTC()}
}

// Publisher sends events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop discards events; used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
