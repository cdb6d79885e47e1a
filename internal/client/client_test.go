package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(srv.URL, WithHTTPClient(srv.Client()))
	c.Session().Set(auth.Tokens{AccessToken: "tok", RefreshToken: "ref"})
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"items": []customer.Customer{{ID: 1, PhoneNumber: "600123456"}}, "total": 1})
	})

	list, err := c.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "600123456", list[0].PhoneNumber)
}

func TestClient_InvalidFormNeverReachesNetwork(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusCreated, map[string]any{})
	})
	ctx := context.Background()

	f := order.NewForm()
	f.CustomerID = 1
	_, err := c.CreateOrder(ctx, f)
	ve, ok := validate.As(err)
	require.True(t, ok)
	assert.Contains(t, ve, "items")

	_, err = c.CreateCustomer(ctx, customer.Form{PhoneNumber: "12345"})
	_, ok = validate.As(err)
	assert.True(t, ok)

	_, err = c.CreateProduct(ctx, product.Form{Name: "x", Price: decimal.RequireFromString("-0.01")})
	_, ok = validate.As(err)
	assert.True(t, ok)

	assert.Zero(t, calls.Load())
}

func TestClient_UnauthorizedIsDistinct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
	})
	_, err := c.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_RemoteErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "customer has orders"})
	})
	err := c.DeleteCustomer(context.Background(), 3)
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "customer has orders", re.Message)
}

func TestClient_GetRetriedOnceOn5xx(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream"})
			return
		}
		writeJSON(w, http.StatusOK, product.Product{ID: 2, Name: "Té"})
	})
	p, err := c.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Té", p.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GetGivesUpAfterSecondFailure(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "down"})
	})
	_, err := c.GetProduct(context.Background(), 2)
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MutationsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})
	_, err := c.CreateCustomer(context.Background(), customer.Form{PhoneNumber: "600123456"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DeleteMissingIsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
	})
	assert.NoError(t, c.DeleteOrder(context.Background(), 9))
}

func TestClient_ApplyStatusChangesSendsOnlyChangedFields(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"payment_status": "paid"}, body)
		writeJSON(w, http.StatusOK, order.Order{ID: 5, PaymentStatus: order.Paid, DeliveryStatus: order.NotDelivered, OrderType: order.Pickup})
	})

	original := order.Order{ID: 5, PaymentStatus: order.NotPaid, DeliveryStatus: order.NotDelivered, OrderType: order.Pickup}
	edited, err := order.ApplyPaymentStatus(original, order.Paid)
	require.NoError(t, err)

	got, err := c.ApplyStatusChanges(context.Background(), original, edited)
	require.NoError(t, err)
	assert.Equal(t, []string{"PUT /api/orders/5/payment_status"}, paths)
	assert.Equal(t, order.Paid, got.PaymentStatus)
}

func TestClient_ApplyStatusChangesNoopWithoutChanges(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	o := order.Order{ID: 5, PaymentStatus: order.Paid}
	got, err := c.ApplyStatusChanges(context.Background(), o, o)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestClient_LoginStoresTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(w, http.StatusOK, auth.Tokens{AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "Bearer"})
	})
	c.Session().Clear()
	require.False(t, c.Session().LoggedIn())

	require.NoError(t, c.Login(context.Background(), "admin", "secret123"))
	assert.Equal(t, "new-access", c.Session().AccessToken())
}

func TestClient_LogoutClearsSessionEvenOnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	})
	assert.Error(t, c.Logout(context.Background()))
	assert.False(t, c.Session().LoggedIn())
}

func TestClient_ListOrdersEncodesFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "paid", r.URL.Query().Get("payment_status"))
		assert.Equal(t, "12", r.URL.Query().Get("search"))
		assert.Empty(t, r.URL.Query().Get("order_type"))
		writeJSON(w, http.StatusOK, map[string]any{"items": []order.Order{}, "total": 0})
	})
	list, err := c.ListOrders(context.Background(), order.Filters{Search: "12", PaymentStatus: order.Paid})
	require.NoError(t, err)
	assert.Empty(t, list)
}
