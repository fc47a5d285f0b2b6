package model

import "time"

// SaleBatch groups the drink line items created by a single
// recording submission at the bar.  A batch is created atomically
// together with its line items and is never mutated afterwards.
//
// Fields:
//  ID        – primary key identifier.
//  EventID   – event the batch belongs to.  Deleting the event
//              cascades to its batches.
//  CreatedAt – assigned by the store at insert time.  Batches are
//              listed newest first.
type SaleBatch struct {
	ID        uint64    `json:"id"`         // sale_batches.id
	EventID   uint64    `json:"event_id"`   // sale_batches.event_id
	CreatedAt time.Time `json:"created_at"` // sale_batches.created_at
}

// Drink is one persisted line item: a drink name, the unit price
// captured at the moment of sale and a positive quantity.  The event
// owns the line item's lifetime; the batch reference is a lookup
// convenience and is cleared (not cascaded) if the batch goes away.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – owning event.
//  BatchID    – batch that created the line item, nil for line items
//               inserted outside the batch flow.
//  Name       – free-form drink name copied from the catalog.
//  PriceCents – unit price in cents at the time of sale.  Later
//               catalog price changes do not affect stored rows.
//  Quantity   – units sold, always > 0.  Zero-quantity entries are
//               filtered out before they ever reach the store.
//  CreatedAt  – creation timestamp.
type Drink struct {
	ID         uint64    `json:"id"`                 // drinks.id
	EventID    uint64    `json:"event_id"`           // drinks.event_id
	BatchID    *uint64   `json:"batch_id,omitempty"` // drinks.batch_id (nullable)
	Name       string    `json:"name"`               // drinks.name
	PriceCents int64     `json:"price_cents"`        // drinks.price_cents
	Quantity   int       `json:"quantity"`           // drinks.quantity
	CreatedAt  time.Time `json:"created_at"`         // drinks.created_at
}
