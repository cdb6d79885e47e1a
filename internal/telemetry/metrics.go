package telemetry

import (
	"context"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/MikeMC777/ordenes-backoffice"

// Metrics holds the domain counters of the API.
type Metrics struct {
	ordersCreated metric.Int64Counter
	statusChanges metric.Int64Counter
	salesAmount   metric.Float64Counter
	logins        metric.Int64Counter
}

// NewMetrics creates the counters on the global MeterProvider and starts
// Go runtime instrumentation.
func NewMetrics() (*Metrics, error) {
	if err := runtime.Start(); err != nil {
		return nil, err
	}
	meter := otel.Meter(meterName)

	var m Metrics
	var err error
	if m.ordersCreated, err = meter.Int64Counter("backoffice.orders.created",
		metric.WithDescription("Orders created")); err != nil {
		return nil, err
	}
	if m.statusChanges, err = meter.Int64Counter("backoffice.orders.status_changes",
		metric.WithDescription("Single-field order status updates")); err != nil {
		return nil, err
	}
	if m.salesAmount, err = meter.Float64Counter("backoffice.orders.sales",
		metric.WithDescription("Sum of created order totals"), metric.WithUnit("USD")); err != nil {
		return nil, err
	}
	if m.logins, err = meter.Int64Counter("backoffice.auth.logins",
		metric.WithDescription("Login attempts by outcome")); err != nil {
		return nil, err
	}
	return &m, nil
}

// The methods below accept a nil receiver so handlers work without metrics.

func (m *Metrics) OrderCreated(ctx context.Context, total float64) {
	if m == nil {
		return
	}
	m.ordersCreated.Add(ctx, 1)
	m.salesAmount.Add(ctx, total)
}

func (m *Metrics) StatusChanged(ctx context.Context, field, value string) {
	if m == nil {
		return
	}
	m.statusChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.String("value", value),
	))
}

func (m *Metrics) Login(ctx context.Context, ok bool) {
	if m == nil {
		return
	}
	m.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", ok)))
}
