package middleware

import (
	"time"

	"trading-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewRequestLoggerMiddleware stores a request-scoped logger in the request
// context and logs every completed request. Run it after RequestID.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqLog := log.With(
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			}
			if status >= 500 {
				reqLog.Warn("Request failed", fields...)
			} else {
				reqLog.Debug("Request handled", fields...)
			}
			return nil
		}
	}
}
