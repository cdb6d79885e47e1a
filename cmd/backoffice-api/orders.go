package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/events"
	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
	"github.com/MikeMC777/ordenes-backoffice/internal/telemetry"
	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

// orderDeps groups what the order handlers need besides the repositories.
type orderDeps struct {
	orders   order.Repository
	products product.Repository
	events   events.Publisher
	metrics  *telemetry.Metrics
	log      *slog.Logger
	now      func() time.Time
}

// publish never fails the request: the order is already stored.
func (d orderDeps) publish(ctx context.Context, e events.Event) {
	if err := d.events.Publish(ctx, e); err != nil {
		d.log.WarnContext(ctx, "publish order event", "type", e.Type, "order_id", e.OrderID, "error", err)
	}
}

func orderFilters(c *gin.Context) (order.Filters, validate.Errors) {
	f := order.Filters{Search: c.Query("search")}
	ve := validate.Errors{}
	if raw := c.Query("payment_status"); raw != "" {
		p, err := order.ParsePaymentStatus(raw)
		if err != nil {
			ve.Add("payment_status", "must be one of: not_paid, paid")
		}
		f.PaymentStatus = p
	}
	if raw := c.Query("delivery_status"); raw != "" {
		d, err := order.ParseDeliveryStatus(raw)
		if err != nil {
			ve.Add("delivery_status", "must be one of: not_delivered, delivered")
		}
		f.DeliveryStatus = d
	}
	if raw := c.Query("order_type"); raw != "" {
		t, err := order.ParseOrderType(raw)
		if err != nil {
			ve.Add("order_type", "must be one of: pickup, delivery")
		}
		f.OrderType = t
	}
	return f, ve
}

// @Summary  List orders
// @Tags     orders
// @Security BearerAuth
// @Param    search          query string false "substring of order id or customer id"
// @Param    payment_status  query string false "not_paid | paid"
// @Param    delivery_status query string false "not_delivered | delivered"
// @Param    order_type      query string false "pickup | delivery"
// @Success  200 {object} listResponse[order.Order]
// @Failure  400 {object} httpx.HTTPError
// @Router   /orders [get]
func listOrdersHandler(d orderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ve := orderFilters(c)
		if !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		all, err := d.orders.List(c.Request.Context())
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		res, ok := paginate(c, order.Filter(all, f))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func loadOrder(c *gin.Context, repo order.Repository) (*order.Order, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	o, err := repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, order.ErrNotFound) {
		httpx.Abort(c, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		httpx.AbortInternal(c, err)
		return nil, false
	}
	return o, true
}

// @Summary  Get an order
// @Tags     orders
// @Security BearerAuth
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(d orderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := loadOrder(c, d.orders)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Price the order items against the current catalog
// @Tags     orders
// @Security BearerAuth
// @Param    id path int true "order id"
// @Success  200 {object} listResponse[order.Line]
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id}/lines [get]
func orderLinesHandler(d orderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := loadOrder(c, d.orders)
		if !ok {
			return
		}
		catalog, err := d.products.List(c.Request.Context())
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		lines := order.Lines(o.Items, order.NewCatalog(catalog))
		c.JSON(http.StatusOK, listResponse[order.Line]{Items: lines, Total: len(lines)})
	}
}

// The total is always computed here from the current catalog; a total sent
// by the caller is ignored.
//
// @Summary  Create an order
// @Tags     orders
// @Security BearerAuth
// @Param    body body order.Form true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  422 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(d orderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := order.NewForm()
		if err := c.ShouldBindJSON(&f); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		if ve := f.Validate(); !ve.OK() {
			httpx.AbortValidation(c, ve)
			return
		}
		o, err := f.ToOrder()
		if err != nil {
			httpx.AbortValidation(c, validate.Errors{"datetime": "is not a valid date and time"})
			return
		}

		ctx := c.Request.Context()
		catalog, err := d.products.List(ctx)
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		o.TotalAmount = order.Total(o, order.NewCatalog(catalog))
		if !validate.Amount(o.TotalAmount) {
			httpx.AbortValidation(c, validate.Errors{"items": "order total exceeds " + validate.MaxAmount.StringFixed(2)})
			return
		}

		err = d.orders.Create(ctx, &o)
		if errors.Is(err, order.ErrUnknownCustomer) {
			httpx.Abort(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}

		total, _ := o.TotalAmount.Float64()
		d.metrics.OrderCreated(ctx, total)
		d.publish(ctx, events.Created(o, httpx.Username(c), d.now()))
		c.JSON(http.StatusCreated, o)
	}
}

// statusUpdate describes one of the three single-field update endpoints.
type statusUpdate struct {
	field string
	// apply parses raw and stores it; a parse failure is reported as order.ErrInvalidStatus.
	apply func(ctx context.Context, repo order.Repository, id int64, raw string) (string, error)
}

var (
	orderTypeUpdate = statusUpdate{
		field: "order_type",
		apply: func(ctx context.Context, repo order.Repository, id int64, raw string) (string, error) {
			t, err := order.ParseOrderType(raw)
			if err != nil {
				return "", err
			}
			return string(t), repo.UpdateOrderType(ctx, id, t)
		},
	}
	paymentStatusUpdate = statusUpdate{
		field: "payment_status",
		apply: func(ctx context.Context, repo order.Repository, id int64, raw string) (string, error) {
			p, err := order.ParsePaymentStatus(raw)
			if err != nil {
				return "", err
			}
			return string(p), repo.UpdatePaymentStatus(ctx, id, p)
		},
	}
	deliveryStatusUpdate = statusUpdate{
		field: "delivery_status",
		apply: func(ctx context.Context, repo order.Repository, id int64, raw string) (string, error) {
			s, err := order.ParseDeliveryStatus(raw)
			if err != nil {
				return "", err
			}
			return string(s), repo.UpdateDeliveryStatus(ctx, id, s)
		},
	}
)

// updateStatusHandler changes exactly one field and answers with the stored order.
//
// @Summary  Set payment_status, delivery_status or order_type
// @Tags     orders
// @Security BearerAuth
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id}/payment_status [put]
// @Router   /orders/{id}/delivery_status [put]
// @Router   /orders/{id}/order_type [put]
func updateStatusHandler(d orderDeps, u statusUpdate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		raw, present := body[u.field]
		if !present {
			httpx.AbortValidation(c, validate.Errors{u.field: "is required"})
			return
		}

		ctx := c.Request.Context()
		value, err := u.apply(ctx, d.orders, id, raw)
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			httpx.AbortValidation(c, validate.Errors{u.field: "is not a recognised value"})
			return
		case errors.Is(err, order.ErrNotFound):
			httpx.Abort(c, http.StatusNotFound, err.Error())
			return
		case err != nil:
			httpx.AbortInternal(c, err)
			return
		}

		o, err := d.orders.GetByID(ctx, id)
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		d.metrics.StatusChanged(ctx, u.field, value)
		d.publish(ctx, events.StatusChanged(id, u.field, value, httpx.Username(c), d.now()))
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Delete an order
// @Tags     orders
// @Security BearerAuth
// @Param    id path int true "order id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [delete]
func deleteOrderHandler(d orderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := d.orders.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		if !deleted {
			httpx.Abort(c, http.StatusNotFound, order.ErrNotFound.Error())
			return
		}
		d.publish(c.Request.Context(), events.Deleted(id, httpx.Username(c), d.now()))
		c.Status(http.StatusNoContent)
	}
}
