package middleware

import (
	"strconv"

	"petnfc/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware counts requests per route and status
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Handle records the request once the handler and error handler are done
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			// let the centralized handler write the response first so the status is final
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).Inc()

		return nil
	}
}
