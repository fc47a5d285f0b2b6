package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

// ErrInvalidQuantity is returned when a caller tries to persist a
// line item with a non-positive quantity.  The sales service filters
// these out; this guard keeps the invariant at the store boundary for
// the single-insert path as well.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// DrinkRepo provides access to drink line items.  Line items belong
// to an event and optionally reference the batch that created them.
type DrinkRepo struct {
	db *sql.DB
}

// NewDrinkRepo returns a new DrinkRepo bound to the given database.
func NewDrinkRepo(db *sql.DB) *DrinkRepo { return &DrinkRepo{db: db} }

const drinkColumns = `id, event_id, batch_id, name, price_cents, quantity, created_at`

// Insert persists a single line item outside the batch flow.  The
// generated ID and timestamp are populated on the provided record.
func (r *DrinkRepo) Insert(ctx context.Context, d *model.Drink) error {
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	const q = `INSERT INTO drinks (event_id, batch_id, name, price_cents, quantity) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, d.EventID, d.BatchID, d.Name, d.PriceCents, d.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return r.db.QueryRowContext(ctx, `SELECT created_at FROM drinks WHERE id = ?`, d.ID).Scan(&d.CreatedAt)
}

// GetByID returns a single line item or ErrDrinkNotFound.
func (r *DrinkRepo) GetByID(ctx context.Context, id uint64) (model.Drink, error) {
	var d model.Drink
	err := r.db.QueryRowContext(ctx, `SELECT `+drinkColumns+` FROM drinks WHERE id = ?`, id).
		Scan(&d.ID, &d.EventID, &d.BatchID, &d.Name, &d.PriceCents, &d.Quantity, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Drink{}, ErrDrinkNotFound
	}
	return d, err
}

// ListByEvent returns every line item recorded for an event, newest
// first.  An event with no sales yields an empty slice, not an error.
func (r *DrinkRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Drink, error) {
	const q = `SELECT ` + drinkColumns + ` FROM drinks
	           WHERE event_id = ?
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	drinks := make([]model.Drink, 0)
	for rows.Next() {
		var d model.Drink
		if err := rows.Scan(&d.ID, &d.EventID, &d.BatchID, &d.Name, &d.PriceCents, &d.Quantity, &d.CreatedAt); err != nil {
			return nil, err
		}
		drinks = append(drinks, d)
	}
	return drinks, rows.Err()
}

// DeleteByID removes a single line item independently of its batch.
// Returns ErrDrinkNotFound when the id does not exist.
func (r *DrinkRepo) DeleteByID(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drinks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDrinkNotFound
	}
	return nil
}
