// Package service implements the business rules between the HTTP
// handlers and the repositories: sale recording with its eligibility
// checks, and the report aggregations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ValenJ7/Sistema-Boliche/internal/catalog"
	"github.com/ValenJ7/Sistema-Boliche/internal/clock"
	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

// ErrSaleNotToday is returned when the target event is not scheduled
// for the current calendar date.  Sales can neither be pre-sold nor
// backfilled through this path.
var ErrSaleNotToday = errors.New("event is not scheduled for today")

// ErrEmptySale is returned when no submitted item survives
// normalization; nothing is persisted in that case.
var ErrEmptySale = errors.New("sale has no items")

// EventStore is the slice of the event repository the sales service
// needs.
type EventStore interface {
	GetByID(ctx context.Context, id uint64) (model.Event, error)
}

// SaleStore records one batch plus its line items atomically.
type SaleStore interface {
	Record(ctx context.Context, eventID uint64, drinks []model.Drink) (model.SaleBatch, error)
}

// ReceiptLine is one recorded item on a receipt.
type ReceiptLine struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Receipt summarizes a successful recording for display to the
// operator.  Summary is a presentation nicety ("3 Fernet con Coca,
// 2 Cerveza"), not a data-model field.
type Receipt struct {
	BatchID    uint64        `json:"batch_id"`
	EventID    uint64        `json:"event_id"`
	Lines      []ReceiptLine `json:"lines"`
	TotalCents int64         `json:"total_cents"`
	Summary    string        `json:"summary"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// SalesServiceInterface is what handlers program against, so tests
// can substitute a fake recorder.
type SalesServiceInterface interface {
	Record(ctx context.Context, eventID uint64, quantities map[uint64]string) (*Receipt, error)
}

// SalesService validates a submitted cart against the catalog and the
// clock, then persists it as one atomic batch.  The catalog and clock
// are injected: the service holds no process-wide state.
type SalesService struct {
	events EventStore
	sales  SaleStore
	cat    catalog.Catalog
	clk    clock.Clock
	log    *slog.Logger
}

// NewSalesService wires a SalesService.
func NewSalesService(events EventStore, sales SaleStore, cat catalog.Catalog, clk clock.Clock, log *slog.Logger) *SalesService {
	return &SalesService{events: events, sales: sales, cat: cat, clk: clk, log: log}
}

// Record attempts to record a sale for an event.  quantities maps
// catalog item IDs to raw quantity strings exactly as submitted.
//
// Validation order: the event must exist; its date must equal the
// current calendar date; then each quantity is normalized (anything
// that does not parse as a positive integer counts as zero) and
// zero-quantity items are dropped.  If nothing survives, the whole
// submission fails with ErrEmptySale before any write.  Otherwise
// one batch and one line item per surviving entry are created in a
// single transaction, with name and price copied from the catalog
// snapshot at submission time.
func (s *SalesService) Record(ctx context.Context, eventID uint64, quantities map[uint64]string) (*Receipt, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	today := s.clk.Now().Format("2006-01-02")
	if ev.Date != today {
		return nil, ErrSaleNotToday
	}

	// Pass 1: normalize per item, never failing.  Catalog order is
	// the submission order the operator sees on the form.
	drinks := make([]model.Drink, 0, s.cat.Len())
	for _, item := range s.cat.Items() {
		qty := parseQuantity(quantities[item.ID])
		if qty <= 0 {
			continue
		}
		drinks = append(drinks, model.Drink{
			EventID:    eventID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   qty,
		})
	}
	// Pass 2: a single whole-request check on the cleaned cart.
	if len(drinks) == 0 {
		return nil, ErrEmptySale
	}

	batch, err := s.sales.Record(ctx, eventID, drinks)
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(drinks))
	parts := make([]string, 0, len(drinks))
	var total int64
	for _, d := range drinks {
		lines = append(lines, ReceiptLine{Name: d.Name, PriceCents: d.PriceCents, Quantity: d.Quantity})
		parts = append(parts, fmt.Sprintf("%d %s", d.Quantity, d.Name))
		total += d.PriceCents * int64(d.Quantity)
	}
	s.log.Info("sale recorded",
		"event_id", eventID,
		"batch_id", batch.ID,
		"items", len(lines),
		"total_cents", total)
	return &Receipt{
		BatchID:    batch.ID,
		EventID:    eventID,
		Lines:      lines,
		TotalCents: total,
		Summary:    strings.Join(parts, ", "),
		RecordedAt: batch.CreatedAt,
	}, nil
}

// parseQuantity turns free-form operator input into a quantity.
// Malformed or negative input counts as zero: one bad field must not
// abort the rest of the submission.
func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
