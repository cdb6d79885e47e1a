package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/dashboard"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

// Create and update calls validate the form first and return validate.Errors
// without touching the network when it is invalid.

func (c *Client) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	var out list[customer.Customer]
	if err := c.do(ctx, http.MethodGet, "/api/customers", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	var out customer.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, f customer.Form) (*customer.Customer, error) {
	if ve := f.Validate(); !ve.OK() {
		return nil, ve
	}
	var out customer.Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, f customer.Form) (*customer.Customer, error) {
	if ve := f.Validate(); !ve.OK() {
		return nil, ve
	}
	var out customer.Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/customers/%d", id), f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/customers/%d", id))
}

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var out list[product.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	var out product.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, f product.Form) (*product.Product, error) {
	if ve := f.Validate(); !ve.OK() {
		return nil, ve
	}
	var out product.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, f product.Form) (*product.Product, error) {
	if ve := f.Validate(); !ve.OK() {
		return nil, ve
	}
	var out product.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

// ListOrders fetches orders, optionally narrowed server-side by f.
func (c *Client) ListOrders(ctx context.Context, f order.Filters) ([]order.Order, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.PaymentStatus != "" {
		q.Set("payment_status", string(f.PaymentStatus))
	}
	if f.DeliveryStatus != "" {
		q.Set("delivery_status", string(f.DeliveryStatus))
	}
	if f.OrderType != "" {
		q.Set("order_type", string(f.OrderType))
	}
	path := "/api/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out list[order.Order]
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderLines returns the items of an order priced against the server catalog.
func (c *Client) OrderLines(ctx context.Context, id int64) ([]order.Line, error) {
	var out list[order.Line]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/lines", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateOrder(ctx context.Context, f order.Form) (*order.Order, error) {
	if ve := f.Validate(); !ve.OK() {
		return nil, ve
	}
	var out order.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetOrderType(ctx context.Context, id int64, t order.OrderType) (*order.Order, error) {
	return c.setField(ctx, id, "order_type", string(t))
}

func (c *Client) SetPaymentStatus(ctx context.Context, id int64, p order.PaymentStatus) (*order.Order, error) {
	return c.setField(ctx, id, "payment_status", string(p))
}

func (c *Client) SetDeliveryStatus(ctx context.Context, id int64, d order.DeliveryStatus) (*order.Order, error) {
	return c.setField(ctx, id, "delivery_status", string(d))
}

func (c *Client) setField(ctx context.Context, id int64, field, value string) (*order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/%s", id, field), map[string]string{field: value}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyStatusChanges sends one update per field that differs between original
// and edited, stopping at the first failure. It returns the last order the
// server answered with, or original when nothing changed.
func (c *Client) ApplyStatusChanges(ctx context.Context, original, edited order.Order) (*order.Order, error) {
	ch := order.Changes(original, edited)
	cur := original.Clone()
	if ch.Empty() {
		return &cur, nil
	}
	var (
		out *order.Order
		err error
	)
	if ch.OrderType != nil {
		if out, err = c.SetOrderType(ctx, original.ID, *ch.OrderType); err != nil {
			return nil, err
		}
	}
	if ch.PaymentStatus != nil {
		if out, err = c.SetPaymentStatus(ctx, original.ID, *ch.PaymentStatus); err != nil {
			return nil, err
		}
	}
	if ch.DeliveryStatus != nil {
		if out, err = c.SetDeliveryStatus(ctx, original.ID, *ch.DeliveryStatus); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/orders/%d", id))
}

func (c *Client) Dashboard(ctx context.Context) (*dashboard.Stats, error) {
	var out dashboard.Stats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
