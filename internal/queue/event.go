// Package queue defines message payloads exchanged over the message
// broker, plus the publisher and the background consumer for the
// sales journal.
package queue

// SaleItem is one recorded line inside a SaleRecordedEvent.
type SaleItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// SaleRecordedEvent is published after a sale batch commits.  It
// carries enough information for downstream consumers to journal or
// notify without querying the primary database.
type SaleRecordedEvent struct {
	BatchID    uint64     `json:"batch_id"`
	EventID    uint64     `json:"event_id"`
	EventName  string     `json:"event_name"`
	Items      []SaleItem `json:"items"`
	TotalCents int64      `json:"total_cents"`
	RecordedAt string     `json:"recorded_at"`
}
