package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/queue"
	"github.com/ValenJ7/Sistema-Boliche/internal/repository"
	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

type fakeSalesService struct {
	receipt *service.Receipt
	err     error
	gotQty  map[uint64]string
}

func (f *fakeSalesService) Record(_ context.Context, _ uint64, quantities map[uint64]string) (*service.Receipt, error) {
	f.gotQty = quantities
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

type fakeEvents struct{}

func (fakeEvents) GetByID(context.Context, uint64) (model.Event, error) {
	return model.Event{ID: 1, Name: "Noche Retro"}, nil
}

func newSalesContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/events/1/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/events/:id/sales")
	c.SetParamNames("id")
	c.SetParamValues("1")
	return c, rec
}

func TestRecordSalesCreated(t *testing.T) {
	svc := &fakeSalesService{receipt: &service.Receipt{
		BatchID:    42,
		EventID:    1,
		Lines:      []service.ReceiptLine{{Name: "Cerveza", PriceCents: 900, Quantity: 2}},
		TotalCents: 1800,
		Summary:    "2 Cerveza",
		RecordedAt: time.Now(),
	}}
	h := NewSalesHandler(svc, fakeEvents{}, nil)

	c, rec := newSalesContext(t, `{"quantities":{"2":"2"}}`)
	require.NoError(t, h.RecordSales(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[uint64]string{2: "2"}, svc.gotQty)
	assert.Contains(t, rec.Body.String(), `"batch_id":42`)
}

func TestRecordSalesStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown event", repository.ErrEventNotFound, http.StatusNotFound},
		{"not today", service.ErrSaleNotToday, http.StatusUnprocessableEntity},
		{"empty sale", service.ErrEmptySale, http.StatusBadRequest},
		{"storage fault", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewSalesHandler(&fakeSalesService{err: tc.err}, fakeEvents{}, nil)
			c, rec := newSalesContext(t, `{"quantities":{"1":"1"}}`)
			require.NoError(t, h.RecordSales(c))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestRecordSalesInvalidID(t *testing.T) {
	h := NewSalesHandler(&fakeSalesService{}, fakeEvents{}, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/events/abc/sales", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.RecordSales(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordSalesPublishesAfterCommit(t *testing.T) {
	svc := &fakeSalesService{receipt: &service.Receipt{
		BatchID:    7,
		EventID:    1,
		Lines:      []service.ReceiptLine{{Name: "Agua", PriceCents: 500, Quantity: 1}},
		TotalCents: 500,
		RecordedAt: time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC),
	}}
	h := NewSalesHandler(svc, fakeEvents{}, nil)

	var published *queue.SaleRecordedEvent
	h.Publish = func(_ context.Context, ev queue.SaleRecordedEvent) error {
		published = &ev
		return nil
	}

	c, rec := newSalesContext(t, `{"quantities":{"5":"1"}}`)
	require.NoError(t, h.RecordSales(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, published)
	assert.Equal(t, uint64(7), published.BatchID)
	assert.Equal(t, "Noche Retro", published.EventName)
	require.Len(t, published.Items, 1)
	assert.Equal(t, queue.SaleItem{Name: "Agua", Quantity: 1, PriceCents: 500}, published.Items[0])
	assert.Equal(t, "2026-08-31T23:00:00Z", published.RecordedAt)
}

func TestRecordSalesPublishFailureIsIgnored(t *testing.T) {
	svc := &fakeSalesService{receipt: &service.Receipt{BatchID: 7, EventID: 1}}
	h := NewSalesHandler(svc, fakeEvents{}, nil)
	h.Publish = func(context.Context, queue.SaleRecordedEvent) error { return assert.AnError }

	c, rec := newSalesContext(t, `{"quantities":{"1":"1"}}`)
	require.NoError(t, h.RecordSales(c))
	assert.Equal(t, http.StatusCreated, rec.Code, "a broker outage must not fail a committed sale")
}
