package repository

import (
	"context"
	"database/sql"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

// EventRepo provides CRUD operations for events.  Events own every
// sale batch and drink line item recorded against them; the schema's
// ON DELETE CASCADE rules make Delete remove the whole subtree.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns a new EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions
// that span repositories.
func (r *EventRepo) DB() *sql.DB { return r.db }

const eventColumns = `id, name, DATE_FORMAT(event_date, '%Y-%m-%d'), start_time, capacity, status, created_at`

// Create inserts a new event and populates the generated ID on the
// provided record.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `INSERT INTO events (name, event_date, start_time, capacity, status) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.Name, e.Date, e.StartTime, e.Capacity, e.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	// Query back the row to populate created_at and store defaults.
	return r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, e.ID).
		Scan(&e.ID, &e.Name, &e.Date, &e.StartTime, &e.Capacity, &e.Status, &e.CreatedAt)
}

// GetByID returns the event with the given id or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	var e model.Event
	err := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Date, &e.StartTime, &e.Capacity, &e.Status, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// List returns all events ordered by date, opening time and id, the
// order the door staff expects on the schedule screen.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events ORDER BY event_date ASC, start_time ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.StartTime, &e.Capacity, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update replaces all mutable fields of an event.  It returns
// ErrEventNotFound when the id does not exist.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	// Existence check first: RowsAffected is 0 both for a missing row
	// and for an update that changes nothing, so it cannot distinguish
	// the two cases on its own.
	if _, err := r.GetByID(ctx, e.ID); err != nil {
		return err
	}
	const q = `UPDATE events SET name = ?, event_date = ?, start_time = ?, capacity = ?, status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, e.Name, e.Date, e.StartTime, e.Capacity, e.Status, e.ID)
	return err
}

// Delete removes an event.  The foreign keys cascade the delete to
// the event's sale batches and drink line items.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}
