package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/queue"
	"github.com/ValenJ7/Sistema-Boliche/internal/repository"
	"github.com/ValenJ7/Sistema-Boliche/internal/service"
)

// SalesHandler implements the sale recording endpoints.  Publish is
// the broker hook invoked after a batch commits; it is optional and
// best-effort, a broker outage must never fail a sale that is already
// on disk.
type SalesHandler struct {
	Sales   service.SalesServiceInterface
	Events  service.EventStore
	Drinks  *repository.DrinkRepo
	Publish func(ctx context.Context, ev queue.SaleRecordedEvent) error
}

// NewSalesHandler constructs a SalesHandler.
func NewSalesHandler(sales service.SalesServiceInterface, events service.EventStore, drinks *repository.DrinkRepo) *SalesHandler {
	return &SalesHandler{Sales: sales, Events: events, Drinks: drinks}
}

type recordSalesReq struct {
	// Quantities maps catalog item IDs to raw quantity strings, as
	// submitted by the bar form.  Strings so that malformed input can
	// be normalized to zero instead of failing the bind.
	Quantities map[uint64]string `json:"quantities"`
}

type addDrinkReq struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// RecordSales handles POST /v1/events/:id/sales: one atomic batch per
// submission.
func (h *SalesHandler) RecordSales(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req recordSalesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	receipt, err := h.Sales.Record(c.Request().Context(), eventID, req.Quantities)
	if err != nil {
		switch err {
		case repository.ErrEventNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case service.ErrSaleNotToday:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "event is not scheduled for today"})
		case service.ErrEmptySale:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no items to record"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record sale"})
		}
	}

	h.publishRecorded(c.Request().Context(), receipt)
	return c.JSON(http.StatusCreated, receipt)
}

// publishRecorded emits a sale.recorded message for the committed
// batch.  Failures are swallowed: the publisher logs them itself.
func (h *SalesHandler) publishRecorded(ctx context.Context, r *service.Receipt) {
	if h.Publish == nil {
		return
	}
	eventName := ""
	if ev, err := h.Events.GetByID(ctx, r.EventID); err == nil {
		eventName = ev.Name
	}
	items := make([]queue.SaleItem, 0, len(r.Lines))
	for _, l := range r.Lines {
		items = append(items, queue.SaleItem{Name: l.Name, Quantity: l.Quantity, PriceCents: l.PriceCents})
	}
	_ = h.Publish(ctx, queue.SaleRecordedEvent{
		BatchID:    r.BatchID,
		EventID:    r.EventID,
		EventName:  eventName,
		Items:      items,
		TotalCents: r.TotalCents,
		RecordedAt: r.RecordedAt.Format(time.RFC3339),
	})
}

// AddDrink handles POST /v1/events/:id/drinks: a single line item
// outside the batch flow, for corrections and off-catalog sales.
func (h *SalesHandler) AddDrink(c echo.Context) error {
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req addDrinkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.PriceCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be >= 0"})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
	}

	ctx := c.Request().Context()
	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load event"})
	}

	d := model.Drink{
		EventID:    eventID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Quantity:   req.Quantity,
	}
	if err := h.Drinks.Insert(ctx, &d); err != nil {
		if err == repository.ErrInvalidQuantity {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add drink"})
	}
	return c.JSON(http.StatusCreated, d)
}

// DeleteDrink handles DELETE /v1/drinks/:id.  Removing a line item
// does not touch its batch; the batch simply reports lower totals.
func (h *SalesHandler) DeleteDrink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Drinks.DeleteByID(c.Request().Context(), id); err != nil {
		if err == repository.ErrDrinkNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "drink not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
