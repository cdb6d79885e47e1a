package main

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/events"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

//
// ===== in-memory repositories =====
//

type stubCustomers struct {
	next  int64
	items map[int64]customer.Customer
	// ids with orders; deleting them fails like the FK would
	inUse map[int64]bool
}

func newStubCustomers() *stubCustomers {
	return &stubCustomers{items: map[int64]customer.Customer{}, inUse: map[int64]bool{}}
}

func (s *stubCustomers) List(context.Context) ([]customer.Customer, error) {
	out := make([]customer.Customer, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubCustomers) GetByID(_ context.Context, id int64) (*customer.Customer, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &c, nil
}

func (s *stubCustomers) Create(_ context.Context, c *customer.Customer) error {
	s.next++
	c.ID = s.next
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	s.items[c.ID] = *c
	return nil
}

func (s *stubCustomers) Update(_ context.Context, c *customer.Customer) error {
	if _, ok := s.items[c.ID]; !ok {
		return customer.ErrNotFound
	}
	s.items[c.ID] = *c
	return nil
}

func (s *stubCustomers) Delete(_ context.Context, id int64) (bool, error) {
	if s.inUse[id] {
		return false, customer.ErrInUse
	}
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

type stubProducts struct {
	next  int64
	items map[int64]product.Product
}

func newStubProducts() *stubProducts { return &stubProducts{items: map[int64]product.Product{}} }

func (s *stubProducts) List(context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubProducts) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (s *stubProducts) Create(_ context.Context, p *product.Product) error {
	s.next++
	p.ID = s.next
	s.items[p.ID] = *p
	return nil
}

func (s *stubProducts) Update(_ context.Context, p *product.Product) error {
	if _, ok := s.items[p.ID]; !ok {
		return product.ErrNotFound
	}
	s.items[p.ID] = *p
	return nil
}

func (s *stubProducts) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

type stubOrders struct {
	next      int64
	items     map[int64]order.Order
	customers *stubCustomers
}

func newStubOrders(customers *stubCustomers) *stubOrders {
	return &stubOrders{items: map[int64]order.Order{}, customers: customers}
}

func (s *stubOrders) Create(_ context.Context, o *order.Order) error {
	if _, ok := s.customers.items[o.CustomerID]; !ok {
		return order.ErrUnknownCustomer
	}
	s.next++
	o.ID = s.next
	o.CreatedAt = time.Now().UTC()
	s.items[o.ID] = o.Clone()
	s.customers.inUse[o.CustomerID] = true
	return nil
}

func (s *stubOrders) GetByID(_ context.Context, id int64) (*order.Order, error) {
	o, ok := s.items[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := o.Clone()
	return &cp, nil
}

func (s *stubOrders) List(context.Context) ([]order.Order, error) {
	out := make([]order.Order, 0, len(s.items))
	for _, o := range s.items {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *stubOrders) update(id int64, fn func(*order.Order)) error {
	o, ok := s.items[id]
	if !ok {
		return order.ErrNotFound
	}
	fn(&o)
	s.items[id] = o
	return nil
}

func (s *stubOrders) UpdateOrderType(_ context.Context, id int64, t order.OrderType) error {
	return s.update(id, func(o *order.Order) { o.OrderType = t })
}

func (s *stubOrders) UpdatePaymentStatus(_ context.Context, id int64, p order.PaymentStatus) error {
	return s.update(id, func(o *order.Order) { o.PaymentStatus = p })
}

func (s *stubOrders) UpdateDeliveryStatus(_ context.Context, id int64, d order.DeliveryStatus) error {
	return s.update(id, func(o *order.Order) { o.DeliveryStatus = d })
}

func (s *stubOrders) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubAuth backs auth.Service with maps.
type stubAuth struct {
	users    map[string]auth.User
	sessions map[string]auth.Session
}

func newStubAuth() *stubAuth {
	return &stubAuth{users: map[string]auth.User{}, sessions: map[string]auth.Session{}}
}

func (s *stubAuth) Create(_ context.Context, u *auth.User) error {
	if _, ok := s.users[u.Username]; ok {
		return auth.ErrAlreadyExist
	}
	s.users[u.Username] = *u
	return nil
}

func (s *stubAuth) GetByUsername(_ context.Context, name string) (*auth.User, error) {
	u, ok := s.users[name]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return &u, nil
}

func (s *stubAuth) Save(_ context.Context, sess auth.Session) error {
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubAuth) Get(_ context.Context, token string) (*auth.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return &sess, nil
}

func (s *stubAuth) Delete(_ context.Context, token string) (bool, error) {
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok, nil
}

func (s *stubAuth) DeleteByUsername(_ context.Context, name string) error {
	for k, sess := range s.sessions {
		if sess.Username == name {
			delete(s.sessions, k)
		}
	}
	return nil
}

// recorder keeps published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
