package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ValenJ7/Sistema-Boliche/internal/handler"
	"github.com/ValenJ7/Sistema-Boliche/internal/middleware"
)

// RegisterEvents registers the event CRUD endpoints.  Reads are open
// so floor screens can browse the schedule without a session; writes
// require a staff token, and deletion is manager-only because it
// cascades to the event's recorded sales.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, jwtSecret string) {
	e.GET("/v1/events", h.List)
	e.GET("/v1/events/:id", h.Get)

	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MANAGER", "STAFF"),
	)
	g.POST("/events", h.Create)
	g.PUT("/events/:id", h.Update)

	mgr := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MANAGER"),
	)
	mgr.DELETE("/events/:id", h.Delete)
}
