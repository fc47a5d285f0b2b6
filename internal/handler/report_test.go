package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

type fakeSummaryService struct {
	totals  []service.DrinkSummary
	batches []service.BatchSummary
	detail  []model.Drink
	err     error
}

func (f *fakeSummaryService) DrinkTotals(context.Context, uint64) ([]service.DrinkSummary, error) {
	return f.totals, f.err
}
func (f *fakeSummaryService) BatchTotals(context.Context, uint64) ([]service.BatchSummary, error) {
	return f.batches, f.err
}
func (f *fakeSummaryService) Detail(context.Context, uint64) ([]model.Drink, error) {
	return f.detail, f.err
}

func newReportContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	return c, rec
}

func TestDrinkTotalsHandler(t *testing.T) {
	h := NewReportHandler(&fakeSummaryService{totals: []service.DrinkSummary{
		{Name: "Cerveza", PriceCents: 900, Quantity: 2, TotalCents: 1800},
		{Name: "Agua", PriceCents: 500, Quantity: 1, TotalCents: 500},
	}})
	c, rec := newReportContext(t, "/v1/events/1/sales/summary")
	require.NoError(t, h.DrinkTotals(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_cents":2300`)
}

func TestDrinkTotalsHandlerEmpty(t *testing.T) {
	// An event without sales (or an unknown event) yields an empty
	// sequence, never a 404.
	h := NewReportHandler(&fakeSummaryService{})
	c, rec := newReportContext(t, "/v1/events/1/sales/summary")
	require.NoError(t, h.DrinkTotals(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestChartHandlerNoData(t *testing.T) {
	h := NewReportHandler(&fakeSummaryService{})
	c, rec := newReportContext(t, "/v1/events/1/sales/chart")
	require.NoError(t, h.Chart(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestChartHandler(t *testing.T) {
	h := NewReportHandler(&fakeSummaryService{totals: []service.DrinkSummary{
		{Name: "Cerveza", Quantity: 2, TotalCents: 1800},
	}})
	c, rec := newReportContext(t, "/v1/events/1/sales/chart")
	require.NoError(t, h.Chart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestReportHandlerStorageFault(t *testing.T) {
	h := NewReportHandler(&fakeSummaryService{err: assert.AnError})
	c, rec := newReportContext(t, "/v1/events/1/sales/detail")
	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
