package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestMetrics records a counter and latency histogram per request,
// labelled by method, route template and status code. The route template
// (e.g. /api/orders/:id) keeps cardinality bounded.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			status := strconv.Itoa(ctx.Response().Status)
			method := ctx.Request().Method

			HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
