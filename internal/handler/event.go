package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ValenJ7/Sistema-Boliche/internal/model"
	"github.com/ValenJ7/Sistema-Boliche/internal/repository"
)

// EventHandler implements the event CRUD endpoints.  Reads are open;
// creation, update and deletion sit behind the JWT middleware, and
// deletion additionally requires the MANAGER role because it cascades
// to every recorded sale of the event.
type EventHandler struct {
	Events *repository.EventRepo
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(events *repository.EventRepo) *EventHandler {
	return &EventHandler{Events: events}
}

type eventReq struct {
	Name      string `json:"name"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	Capacity  *int64 `json:"capacity"`
	Status    string `json:"status"` // active | inactive
}

// validate normalizes the request and reports the first problem as a
// user-facing message, or builds the model value.
func (r *eventReq) validate() (model.Event, string) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return model.Event{}, "name is required"
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(r.Date)); err != nil {
		return model.Event{}, "date must be YYYY-MM-DD"
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(r.StartTime)); err != nil {
		return model.Event{}, "start_time must be HH:MM"
	}
	var capacity int64
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	if capacity < 0 {
		return model.Event{}, "capacity must be >= 0"
	}
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.EventStatusActive
	}
	if status != model.EventStatusActive && status != model.EventStatusInactive {
		return model.Event{}, "status must be active or inactive"
	}
	return model.Event{
		Name:      name,
		Date:      strings.TrimSpace(r.Date),
		StartTime: strings.TrimSpace(r.StartTime),
		Capacity:  uint32(capacity),
		Status:    status,
	}, ""
}

// List handles GET /v1/events and returns all events in schedule
// order.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.Events.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load events"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": events})
}

// Get handles GET /v1/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ev, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load event"})
	}
	return c.JSON(http.StatusOK, ev)
}

// Create handles POST /v1/events.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ev, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Events.Create(c.Request().Context(), &ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// Update handles PUT /v1/events/:id with a full replace of the
// mutable fields.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ev, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ev.ID = id
	if err := h.Events.Update(c.Request().Context(), &ev); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load event"})
	}
	return c.JSON(http.StatusOK, fresh)
}

// Delete handles DELETE /v1/events/:id.  The store cascades the
// delete to the event's batches and line items.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
