//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
	"github.com/MikeMC777/ordenes-backoffice/internal/store"
)

// setupPostgres starts a throwaway database with every migration applied.
func setupPostgres(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("backoffice"),
		postgres.WithUsername("backoffice"),
		postgres.WithPassword("backoffice"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, store.MigrateUp(dsn))
	// a second run has nothing to do
	require.NoError(t, store.MigrateUp(dsn))

	pool, err := store.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, dsn
}

func TestRepositories(t *testing.T) {
	pool, dsn := setupPostgres(t)
	ctx := context.Background()

	customers := customer.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)

	t.Run("customers", func(t *testing.T) {
		c := customer.Customer{PhoneNumber: "600123456", Name: "Ana"}
		require.NoError(t, customers.Create(ctx, &c))
		assert.NotZero(t, c.ID)

		got, err := customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
		assert.Empty(t, got.Address)

		c.Address = "Calle Mayor 1"
		require.NoError(t, customers.Update(ctx, &c))
		got, err = customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Calle Mayor 1", got.Address)

		missing := customer.Customer{ID: 9999, PhoneNumber: "600123456"}
		assert.ErrorIs(t, customers.Update(ctx, &missing), customer.ErrNotFound)
		_, err = customers.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, customer.ErrNotFound)
	})

	t.Run("products", func(t *testing.T) {
		p := product.Product{Name: "Café", Price: decimal.RequireFromString("9.50"), IsActive: true}
		require.NoError(t, products.Create(ctx, &p))

		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("9.5")), "price %s", got.Price)

		p.IsActive = false
		require.NoError(t, products.Update(ctx, &p))
		list, err := products.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].IsActive)
	})

	t.Run("orders", func(t *testing.T) {
		cs, err := customers.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, cs)
		cid := cs[0].ID

		unknown := order.Order{CustomerID: 4242, OrderType: order.Pickup, PaymentStatus: order.NotPaid,
			DeliveryStatus: order.NotDelivered, Items: []order.Item{{ProductID: 1, Quantity: 1}}}
		assert.ErrorIs(t, orders.Create(ctx, &unknown), order.ErrUnknownCustomer)

		when := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
		o := order.Order{
			CustomerID:     cid,
			OrderType:      order.Delivery,
			PaymentStatus:  order.NotPaid,
			DeliveryStatus: order.NotDelivered,
			Datetime:       &when,
			Items:          []order.Item{{ProductID: 7, Quantity: 3}, {ProductID: 1, Quantity: 2}, {ProductID: 7, Quantity: 1}},
			TotalAmount:    decimal.RequireFromString("19.00"),
		}
		require.NoError(t, orders.Create(ctx, &o))
		assert.NotZero(t, o.ID)

		got, err := orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.Items, got.Items, "items keep insertion order")
		assert.True(t, got.TotalAmount.Equal(o.TotalAmount))
		require.NotNil(t, got.Datetime)
		assert.True(t, got.Datetime.Equal(when))

		require.NoError(t, orders.UpdatePaymentStatus(ctx, o.ID, order.Paid))
		got, err = orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Paid, got.PaymentStatus)
		assert.Equal(t, order.NotDelivered, got.DeliveryStatus)
		assert.Equal(t, order.Delivery, got.OrderType)

		assert.ErrorIs(t, orders.UpdateDeliveryStatus(ctx, 9999, order.Delivered), order.ErrNotFound)

		// the customer now has an order
		_, err = customers.Delete(ctx, cid)
		assert.ErrorIs(t, err, customer.ErrInUse)

		list, err := orders.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Len(t, list[0].Items, 3)

		deleted, err := orders.Delete(ctx, o.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = orders.Delete(ctx, o.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = customers.Delete(ctx, cid)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("auth", func(t *testing.T) {
		repo := auth.NewPGRepo(pool)
		svc := auth.NewService(repo, repo, time.Minute, time.Hour)

		_, err := svc.Register(ctx, auth.Credentials{Username: "admin", Password: "secret123"})
		require.NoError(t, err)
		_, err = svc.Register(ctx, auth.Credentials{Username: "admin", Password: "secret123"})
		assert.ErrorIs(t, err, auth.ErrAlreadyExist)

		tok, err := svc.Login(ctx, auth.Credentials{Username: "admin", Password: "secret123"})
		require.NoError(t, err)
		name, err := svc.Authenticate(ctx, tok.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", name)

		require.NoError(t, svc.Logout(ctx, "admin"))
		_, err = svc.Authenticate(ctx, tok.AccessToken)
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("migrate down", func(t *testing.T) {
		m, err := store.NewMigrator(dsn)
		require.NoError(t, err)
		defer func() { _, _ = m.Close() }()

		require.NoError(t, m.Down())
		_, _, err = m.Version()
		assert.True(t, errors.Is(err, migrate.ErrNilVersion), "got %v", err)
	})
}
