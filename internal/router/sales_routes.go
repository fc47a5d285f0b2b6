package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ValenJ7/Sistema-Boliche/internal/config"
	"github.com/ValenJ7/Sistema-Boliche/internal/handler"
	"github.com/ValenJ7/Sistema-Boliche/internal/middleware"
)

// RegisterSales registers the sale recording endpoints.  All of them
// write, so all of them require a staff token.
func RegisterSales(e *echo.Echo, h *handler.SalesHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MANAGER", "STAFF"),
	)
	g.POST("/events/:id/sales", h.RecordSales)
	g.POST("/events/:id/drinks", h.AddDrink)
	g.DELETE("/drinks/:id", h.DeleteDrink)
}

// RegisterReports registers the read-only report endpoints.  JSON
// reports go through the Redis cache middleware; the chart endpoint is
// served uncached because it answers SVG (and occasionally 204), which
// the JSON cache does not store.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.ReportCache(cacheCfg, rdb)
	e.GET("/v1/events/:id/sales/summary", h.DrinkTotals, cached)
	e.GET("/v1/events/:id/sales/batches", h.BatchTotals, cached)
	e.GET("/v1/events/:id/sales/detail", h.Detail, cached)
	e.GET("/v1/events/:id/sales/chart", h.Chart)
}
