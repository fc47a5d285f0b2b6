package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

// DrinkLister is the read slice of the drink repository used by
// reports.
type DrinkLister interface {
	ListByEvent(ctx context.Context, eventID uint64) ([]model.Drink, error)
}

// BatchLister is the read slice of the sale batch repository used by
// reports.
type BatchLister interface {
	ListByEvent(ctx context.Context, eventID uint64) ([]model.SaleBatch, error)
}

// DrinkSummary is one per-drink aggregate row: all line items of an
// event sharing (name, unit price), rolled up.
type DrinkSummary struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
}

// BatchSummary is one per-batch aggregate row paired with the batch's
// surviving line items.  A batch whose items were all deleted still
// appears with zero totals.
type BatchSummary struct {
	ID         uint64        `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	ItemCount  int           `json:"item_count"`
	TotalCents int64         `json:"total_cents"`
	Items      []model.Drink `json:"items"`
}

// SummaryServiceInterface is what report handlers program against.
type SummaryServiceInterface interface {
	DrinkTotals(ctx context.Context, eventID uint64) ([]DrinkSummary, error)
	BatchTotals(ctx context.Context, eventID uint64) ([]BatchSummary, error)
	Detail(ctx context.Context, eventID uint64) ([]model.Drink, error)
}

// SummaryService computes the sales reports for an event.  All three
// operations are pure reads; the only way they fail is a storage
// fault, which propagates to the caller unchanged.
type SummaryService struct {
	drinks  DrinkLister
	batches BatchLister
	log     *slog.Logger
}

// NewSummaryService wires a SummaryService.
func NewSummaryService(drinks DrinkLister, batches BatchLister, log *slog.Logger) *SummaryService {
	return &SummaryService{drinks: drinks, batches: batches, log: log}
}

// DrinkTotals groups an event's line items by (name, unit price) and
// sums quantity and revenue per group.  Rows are ordered by revenue
// descending, ties broken by name ascending.  An event without sales
// yields an empty slice.
func (s *SummaryService) DrinkTotals(ctx context.Context, eventID uint64) ([]DrinkSummary, error) {
	drinks, err := s.drinks.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	type key struct {
		name  string
		price int64
	}
	totals := make(map[key]*DrinkSummary)
	order := make([]key, 0)
	for _, d := range drinks {
		k := key{name: d.Name, price: d.PriceCents}
		row, ok := totals[k]
		if !ok {
			row = &DrinkSummary{Name: d.Name, PriceCents: d.PriceCents}
			totals[k] = row
			order = append(order, k)
		}
		row.Quantity += d.Quantity
		row.TotalCents += d.PriceCents * int64(d.Quantity)
	}
	out := make([]DrinkSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *totals[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCents != out[j].TotalCents {
			return out[i].TotalCents > out[j].TotalCents
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PriceCents < out[j].PriceCents
	})
	return out, nil
}

// BatchTotals returns one row per batch of the event, newest first
// (creation time descending, then id descending), each carrying the
// batch's line items, total item count and total amount.  Batches
// with no surviving items appear with zero totals, which is why this
// walks the batch list rather than grouping line items.
func (s *SummaryService) BatchTotals(ctx context.Context, eventID uint64) ([]BatchSummary, error) {
	batches, err := s.batches.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	drinks, err := s.drinks.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	byBatch := make(map[uint64][]model.Drink)
	for _, d := range drinks {
		if d.BatchID == nil {
			continue // line items outside the batch flow
		}
		byBatch[*d.BatchID] = append(byBatch[*d.BatchID], d)
	}
	out := make([]BatchSummary, 0, len(batches))
	for _, b := range batches {
		items := byBatch[b.ID]
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
		row := BatchSummary{ID: b.ID, CreatedAt: b.CreatedAt, Items: items}
		if row.Items == nil {
			row.Items = []model.Drink{}
		}
		for _, d := range items {
			row.ItemCount += d.Quantity
			row.TotalCents += d.PriceCents * int64(d.Quantity)
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Detail returns the flat line-item listing for an event, newest
// first (creation time descending, then id descending), for audit
// and search screens.
func (s *SummaryService) Detail(ctx context.Context, eventID uint64) ([]model.Drink, error) {
	drinks, err := s.drinks.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	sort.Slice(drinks, func(i, j int) bool {
		if !drinks[i].CreatedAt.Equal(drinks[j].CreatedAt) {
			return drinks[i].CreatedAt.After(drinks[j].CreatedAt)
		}
		return drinks[i].ID > drinks[j].ID
	})
	return drinks, nil
}
