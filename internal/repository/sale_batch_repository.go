package repository

import (
	"context"
	"database/sql"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

// SaleBatchRepo persists sale batches, the atomic groupings created
// by one recording submission.  Batch creation always happens inside
// a transaction together with the batch's drink line items: either
// the batch and every line item become durable, or nothing does.
type SaleBatchRepo struct {
	db *sql.DB
}

// NewSaleBatchRepo returns a new SaleBatchRepo bound to the given database.
func NewSaleBatchRepo(db *sql.DB) *SaleBatchRepo { return &SaleBatchRepo{db: db} }

// Record creates one sale batch for the event plus one drinks row per
// entry in drinks, all in a single transaction.  Each drink gets its
// EventID and BatchID set before insertion.  On any failure the
// transaction is rolled back and no partial batch is visible to
// readers.  The caller must pass at least one drink with a positive
// quantity; the store never persists zero-quantity rows.
func (r *SaleBatchRepo) Record(ctx context.Context, eventID uint64, drinks []model.Drink) (model.SaleBatch, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.SaleBatch{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `INSERT INTO sale_batches (event_id) VALUES (?)`, eventID)
	if err != nil {
		return model.SaleBatch{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.SaleBatch{}, err
	}
	batch := model.SaleBatch{ID: uint64(id), EventID: eventID}
	if err := tx.QueryRowContext(ctx, `SELECT created_at FROM sale_batches WHERE id = ?`, batch.ID).
		Scan(&batch.CreatedAt); err != nil {
		return model.SaleBatch{}, err
	}

	// Bulk insert all line items in a single statement.
	query := `INSERT INTO drinks (event_id, batch_id, name, price_cents, quantity) VALUES `
	args := make([]interface{}, 0, len(drinks)*5)
	for i := range drinks {
		drinks[i].EventID = eventID
		drinks[i].BatchID = &batch.ID
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, eventID, batch.ID, drinks[i].Name, drinks[i].PriceCents, drinks[i].Quantity)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.SaleBatch{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.SaleBatch{}, err
	}
	committed = true
	return batch, nil
}

// ListByEvent returns all batches for an event, newest first.
func (r *SaleBatchRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.SaleBatch, error) {
	const q = `SELECT id, event_id, created_at FROM sale_batches
	           WHERE event_id = ?
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	batches := make([]model.SaleBatch, 0)
	for rows.Next() {
		var b model.SaleBatch
		if err := rows.Scan(&b.ID, &b.EventID, &b.CreatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// DeleteByID removes a single batch.  The drinks foreign key is ON
// DELETE SET NULL, so the batch's line items survive with their batch
// reference cleared.  No HTTP route currently reaches this; only
// event deletion removes batches in practice.
func (r *SaleBatchRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sale_batches WHERE id = ?`, id)
	return err
}
