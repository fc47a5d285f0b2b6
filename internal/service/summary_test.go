package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
)

type fakeDrinkLister struct {
	drinks []model.Drink
}

func (f *fakeDrinkLister) ListByEvent(context.Context, uint64) ([]model.Drink, error) {
	return f.drinks, nil
}

type fakeBatchLister struct {
	batches []model.SaleBatch
}

func (f *fakeBatchLister) ListByEvent(context.Context, uint64) ([]model.SaleBatch, error) {
	return f.batches, nil
}

func batchRef(id uint64) *uint64 { return &id }

func newTestSummary(drinks []model.Drink, batches []model.SaleBatch) *SummaryService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSummaryService(&fakeDrinkLister{drinks: drinks}, &fakeBatchLister{batches: batches}, log)
}

var baseTime = time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)

func TestDrinkTotalsGrouping(t *testing.T) {
	svc := newTestSummary([]model.Drink{
		{ID: 1, Name: "Fernet con Coca", PriceCents: 1500, Quantity: 3},
		{ID: 2, Name: "Fernet con Coca", PriceCents: 1500, Quantity: 2},
		{ID: 3, Name: "Cerveza", PriceCents: 900, Quantity: 10},
		// Same name, different unit price: a separate group.
		{ID: 4, Name: "Cerveza", PriceCents: 1000, Quantity: 1},
	}, nil)

	rows, err := svc.DrinkTotals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Revenue descending, ties by name ascending.
	assert.Equal(t, DrinkSummary{Name: "Cerveza", PriceCents: 900, Quantity: 10, TotalCents: 9000}, rows[0])
	assert.Equal(t, DrinkSummary{Name: "Fernet con Coca", PriceCents: 1500, Quantity: 5, TotalCents: 7500}, rows[1])
	assert.Equal(t, DrinkSummary{Name: "Cerveza", PriceCents: 1000, Quantity: 1, TotalCents: 1000}, rows[2])
}

func TestDrinkTotalsOrderingTies(t *testing.T) {
	svc := newTestSummary([]model.Drink{
		{ID: 1, Name: "Vodka con Speed", PriceCents: 500, Quantity: 2},
		{ID: 2, Name: "Agua", PriceCents: 1000, Quantity: 1},
	}, nil)

	rows, err := svc.DrinkTotals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Agua", rows[0].Name, "equal revenue breaks ties by name")
	assert.Equal(t, "Vodka con Speed", rows[1].Name)
}

func TestDrinkTotalsEmpty(t *testing.T) {
	svc := newTestSummary(nil, nil)
	rows, err := svc.DrinkTotals(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBatchTotals(t *testing.T) {
	batches := []model.SaleBatch{
		{ID: 7, EventID: 1, CreatedAt: baseTime.Add(2 * time.Minute)},
		{ID: 6, EventID: 1, CreatedAt: baseTime.Add(time.Minute)},
		{ID: 5, EventID: 1, CreatedAt: baseTime}, // all items deleted
	}
	drinks := []model.Drink{
		{ID: 12, BatchID: batchRef(7), Name: "Cerveza", PriceCents: 900, Quantity: 2, CreatedAt: baseTime.Add(2 * time.Minute)},
		{ID: 11, BatchID: batchRef(7), Name: "Fernet con Coca", PriceCents: 1500, Quantity: 1, CreatedAt: baseTime.Add(2 * time.Minute)},
		{ID: 10, BatchID: batchRef(6), Name: "Agua", PriceCents: 500, Quantity: 1, CreatedAt: baseTime.Add(time.Minute)},
		{ID: 9, BatchID: nil, Name: "Gin Tonic", PriceCents: 1200, Quantity: 1, CreatedAt: baseTime}, // loose line
	}
	svc := newTestSummary(drinks, batches)

	rows, err := svc.BatchTotals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Newest batch first.
	assert.Equal(t, uint64(7), rows[0].ID)
	assert.Equal(t, 3, rows[0].ItemCount)
	assert.Equal(t, int64(2*900+1500), rows[0].TotalCents)
	// Items within a batch come back in id order.
	require.Len(t, rows[0].Items, 2)
	assert.Equal(t, uint64(11), rows[0].Items[0].ID)
	assert.Equal(t, uint64(12), rows[0].Items[1].ID)

	assert.Equal(t, uint64(6), rows[1].ID)
	assert.Equal(t, int64(500), rows[1].TotalCents)

	// The emptied batch still appears, with zero totals and a
	// non-nil item slice.
	assert.Equal(t, uint64(5), rows[2].ID)
	assert.Zero(t, rows[2].ItemCount)
	assert.Zero(t, rows[2].TotalCents)
	assert.NotNil(t, rows[2].Items)
	assert.Empty(t, rows[2].Items)
}

func TestBatchTotalsTieBreakByID(t *testing.T) {
	batches := []model.SaleBatch{
		{ID: 1, EventID: 1, CreatedAt: baseTime},
		{ID: 2, EventID: 1, CreatedAt: baseTime},
	}
	svc := newTestSummary(nil, batches)

	rows, err := svc.BatchTotals(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(2), rows[0].ID, "same timestamp falls back to id descending")
}

func TestDetailOrdering(t *testing.T) {
	drinks := []model.Drink{
		{ID: 1, Name: "Agua", CreatedAt: baseTime},
		{ID: 3, Name: "Cerveza", CreatedAt: baseTime.Add(time.Minute)},
		{ID: 2, Name: "Fernet con Coca", CreatedAt: baseTime.Add(time.Minute)},
	}
	svc := newTestSummary(drinks, nil)

	rows, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint64(3), rows[0].ID)
	assert.Equal(t, uint64(2), rows[1].ID)
	assert.Equal(t, uint64(1), rows[2].ID)
}

func TestReportsAreReadOnly(t *testing.T) {
	svc := newTestSummary([]model.Drink{
		{ID: 1, Name: "Cerveza", PriceCents: 900, Quantity: 2},
	}, nil)

	first, err := svc.DrinkTotals(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.DrinkTotals(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated reads yield identical results")
}
