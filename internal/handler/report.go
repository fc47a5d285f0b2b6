package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/report"
	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

// ReportHandler exposes the read-only sales reports.  These endpoints
// never answer 404 for an unknown event: an event without sales and an
// event that does not exist both yield empty sequences, matching the
// behavior of the aggregation queries.
type ReportHandler struct {
	Summary service.SummaryServiceInterface
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(summary service.SummaryServiceInterface) *ReportHandler {
	return &ReportHandler{Summary: summary}
}

// DrinkTotals handles GET /v1/events/:id/sales/summary.
func (h *ReportHandler) DrinkTotals(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rows, err := h.Summary.DrinkTotals(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load summary"})
	}
	if rows == nil {
		rows = []service.DrinkSummary{}
	}
	var total int64
	for _, r := range rows {
		total += r.TotalCents
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows, "total_cents": total})
}

// BatchTotals handles GET /v1/events/:id/sales/batches.
func (h *ReportHandler) BatchTotals(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rows, err := h.Summary.BatchTotals(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load batches"})
	}
	if rows == nil {
		rows = []service.BatchSummary{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// Detail handles GET /v1/events/:id/sales/detail.
func (h *ReportHandler) Detail(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rows, err := h.Summary.Detail(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load detail"})
	}
	if rows == nil {
		rows = []model.Drink{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// Chart handles GET /v1/events/:id/sales/chart and renders the
// per-drink summary as an SVG bar chart.  No recorded sales means no
// artifact: the endpoint answers 204.
func (h *ReportHandler) Chart(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rows, err := h.Summary.DrinkTotals(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load summary"})
	}
	svg, ok := report.RenderDrinkChart(rows)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", svg)
}
