package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/store"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrUnknownCustomer is returned when customer_id does not reference an existing customer.
	ErrUnknownCustomer = errors.New("customer does not exist")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateOrderType(ctx context.Context, id int64, t OrderType) error
	UpdatePaymentStatus(ctx context.Context, id int64, p PaymentStatus) error
	UpdateDeliveryStatus(ctx context.Context, id int64, d DeliveryStatus) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts the order and its items in one transaction and fills ID and CreatedAt.
func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, order_type, payment_status, delivery_status, datetime, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, NOW())
		RETURNING id, created_at
	`, o.CustomerID, string(o.OrderType), string(o.PaymentStatus), string(o.DeliveryStatus), o.Datetime, o.TotalAmount.String()).
		Scan(&o.ID, &o.CreatedAt)
	if store.IsForeignKeyViolation(err) {
		return ErrUnknownCustomer
	}
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, it := range o.Items {
		batch.Queue(`INSERT INTO order_items (order_id, position, product_id, quantity) VALUES ($1,$2,$3,$4)`,
			o.ID, i, it.ProductID, it.Quantity)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const selectCols = `id, customer_id, order_type, payment_status, delivery_status, datetime, total_amount::text, created_at`

func scan(row pgx.Row, o *Order) error {
	var total string
	var ot, ps, ds string
	if err := row.Scan(&o.ID, &o.CustomerID, &ot, &ps, &ds, &o.Datetime, &total, &o.CreatedAt); err != nil {
		return err
	}
	o.OrderType, o.PaymentStatus, o.DeliveryStatus = OrderType(ot), PaymentStatus(ps), DeliveryStatus(ds)
	d, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	o.TotalAmount = d
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := scan(r.db.QueryRow(ctx, `SELECT `+selectCols+` FROM orders WHERE id=$1`, id), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	o.Items = items[id]
	if o.Items == nil {
		o.Items = []Item{}
	}
	return &o, nil
}

// List returns every order, newest first, with its items.
func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+selectCols+` FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	ids := []int64{}
	for rows.Next() {
		var o Order
		if err := scan(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
		if out[i].Items == nil {
			out[i].Items = []Item{}
		}
	}
	return out, nil
}

func (r *PGRepo) items(ctx context.Context, orderIDs []int64) (map[int64][]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, product_id, quantity
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]Item, len(orderIDs))
	for rows.Next() {
		var orderID int64
		var it Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateOrderType(ctx context.Context, id int64, t OrderType) error {
	return r.updateField(ctx, id, "order_type", string(t))
}

func (r *PGRepo) UpdatePaymentStatus(ctx context.Context, id int64, p PaymentStatus) error {
	return r.updateField(ctx, id, "payment_status", string(p))
}

func (r *PGRepo) UpdateDeliveryStatus(ctx context.Context, id int64, d DeliveryStatus) error {
	return r.updateField(ctx, id, "delivery_status", string(d))
}

// column is one of the three status columns above, never user input.
func (r *PGRepo) updateField(ctx context.Context, id int64, column, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `UPDATE orders SET `+column+` = $2 WHERE id = $1`, id, value)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
