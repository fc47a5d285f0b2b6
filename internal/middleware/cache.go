package middleware

// Report reads are the hot path on event nights: every bar screen
// polls the same summaries.  This middleware caches successful JSON
// responses of GET report routes in Redis for a short TTL.  Stale
// data is acceptable within the TTL; writes do not invalidate.

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ValenJ7/Sistema-Boliche/internal/config"
)

// bodyRecorder duplicates the response body into a buffer while it
// streams to the client, so the handler's output can be cached after
// the fact.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if w.buf.Len()+len(b) <= w.limit {
		w.buf.Write(b)
	} else {
		w.buf.Reset()
		w.limit = 0 // oversized response, stop recording
	}
	return w.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from route and query string.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery + "&" + c.Param("id")))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// ReportCache returns a middleware that serves GET responses from
// Redis when possible.  With caching disabled or no Redis client
// available it degrades to a passthrough.  Only 200 responses with a
// JSON content type are stored.
func ReportCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()
			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			ct := c.Response().Header().Get(echo.HeaderContentType)
			if rec.status == http.StatusOK && rec.buf.Len() > 0 &&
				bytes.Contains([]byte(ct), []byte(echo.MIMEApplicationJSON)) {
				// Best effort: a failed SET just means the next
				// request recomputes.
				_ = rdb.Set(ctx, key, rec.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
