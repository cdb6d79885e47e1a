package customer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/ordenes-backoffice/internal/store"
)

var (
	ErrNotFound = errors.New("customer not found")
	// ErrInUse is returned when deleting a customer that still has orders.
	ErrInUse = errors.New("customer has orders")
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectCols = `id, COALESCE(name,''), phone_number, COALESCE(address,''), COALESCE(notes,''), created_at, updated_at`

func scan(row pgx.Row, c *Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PGRepo) List(ctx context.Context) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+selectCols+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		var c Customer
		if err := scan(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Customer
	err := scan(r.db.QueryRow(ctx, `SELECT `+selectCols+` FROM customers WHERE id=$1`, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts c and fills in the generated id and timestamps.
func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO customers (name, phone_number, address, notes, created_at, updated_at)
		VALUES (NULLIF($1,''), $2, NULLIF($3,''), NULLIF($4,''), NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, c.Name, c.PhoneNumber, c.Address, c.Notes).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update replaces every editable field of the customer with id c.ID.
func (r *PGRepo) Update(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		UPDATE customers
		SET name = NULLIF($2,''),
		    phone_number = $3,
		    address = NULLIF($4,''),
		    notes = NULLIF($5,''),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.PhoneNumber, c.Address, c.Notes).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return false, ErrInUse
		}
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
