package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenJ7/Sistema-Boliche/internal/catalog"
	"github.com/ValenJ7/Sistema-Boliche/internal/clock"
	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/repository"
)

type fakeEventStore struct {
	events map[uint64]model.Event
}

func (f *fakeEventStore) GetByID(_ context.Context, id uint64) (model.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	return ev, nil
}

type fakeSaleStore struct {
	calls   int
	drinks  []model.Drink
	eventID uint64
	now     time.Time
}

func (f *fakeSaleStore) Record(_ context.Context, eventID uint64, drinks []model.Drink) (model.SaleBatch, error) {
	f.calls++
	f.eventID = eventID
	f.drinks = drinks
	return model.SaleBatch{ID: 42, EventID: eventID, CreatedAt: f.now}, nil
}

var testNow = time.Date(2026, 8, 31, 23, 15, 0, 0, time.Local)

func newTestSales(t *testing.T, eventDate string) (*SalesService, *fakeSaleStore) {
	t.Helper()
	events := &fakeEventStore{events: map[uint64]model.Event{
		1: {ID: 1, Name: "Noche Retro", Date: eventDate, StartTime: "23:00", Status: model.EventStatusActive},
	}}
	sales := &fakeSaleStore{now: testNow}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSalesService(events, sales, catalog.Default(), clock.Fixed(testNow), log)
	return svc, sales
}

func TestRecordUnknownEvent(t *testing.T) {
	svc, sales := newTestSales(t, "2026-08-31")
	_, err := svc.Record(context.Background(), 99, map[uint64]string{1: "2"})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.Zero(t, sales.calls, "nothing may be persisted")
}

func TestRecordNotToday(t *testing.T) {
	for _, date := range []string{"2026-08-30", "2026-09-01"} {
		svc, sales := newTestSales(t, date)
		_, err := svc.Record(context.Background(), 1, map[uint64]string{1: "2"})
		assert.ErrorIs(t, err, ErrSaleNotToday, "date %s", date)
		assert.Zero(t, sales.calls)
	}
}

func TestRecordEmptySubmission(t *testing.T) {
	cases := []map[uint64]string{
		nil,
		{},
		{1: "0", 2: "0"},
		{1: "abc", 2: "-3", 3: ""},
	}
	for _, qty := range cases {
		svc, sales := newTestSales(t, "2026-08-31")
		_, err := svc.Record(context.Background(), 1, qty)
		assert.ErrorIs(t, err, ErrEmptySale)
		assert.Zero(t, sales.calls, "empty submission must not create a batch")
	}
}

func TestRecordHappyPath(t *testing.T) {
	svc, sales := newTestSales(t, "2026-08-31")

	receipt, err := svc.Record(context.Background(), 1, map[uint64]string{
		1: "3", // Fernet con Coca @ 800000
		2: "2", // Cerveza @ 350000
		5: "1", // Agua @ 200000
	})
	require.NoError(t, err)
	require.Equal(t, 1, sales.calls)
	require.Len(t, sales.drinks, 3)
	assert.Equal(t, uint64(1), sales.eventID)

	// Line items carry the catalog snapshot in catalog order.
	assert.Equal(t, "Fernet con Coca", sales.drinks[0].Name)
	assert.Equal(t, int64(800000), sales.drinks[0].PriceCents)
	assert.Equal(t, 3, sales.drinks[0].Quantity)
	assert.Equal(t, "Cerveza", sales.drinks[1].Name)
	assert.Equal(t, "Agua", sales.drinks[2].Name)
	for _, d := range sales.drinks {
		assert.Equal(t, uint64(1), d.EventID)
	}

	assert.Equal(t, uint64(42), receipt.BatchID)
	assert.Equal(t, int64(3*800000+2*350000+200000), receipt.TotalCents)
	assert.Equal(t, "3 Fernet con Coca, 2 Cerveza, 1 Agua", receipt.Summary)
	assert.Equal(t, testNow, receipt.RecordedAt)
}

func TestRecordMalformedQuantityIsZero(t *testing.T) {
	svc, sales := newTestSales(t, "2026-08-31")

	receipt, err := svc.Record(context.Background(), 1, map[uint64]string{
		1: "abc", // dropped
		2: "2",
		3: "-1", // dropped
	})
	require.NoError(t, err, "one bad field must not abort the submission")
	require.Len(t, sales.drinks, 1)
	assert.Equal(t, "Cerveza", sales.drinks[0].Name)
	assert.Equal(t, int64(700000), receipt.TotalCents)
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, parseQuantity("3"))
	assert.Equal(t, 3, parseQuantity(" 3 "))
	assert.Equal(t, 0, parseQuantity(""))
	assert.Equal(t, 0, parseQuantity("abc"))
	assert.Equal(t, 0, parseQuantity("-2"))
	assert.Equal(t, 0, parseQuantity("1.5"))
}
