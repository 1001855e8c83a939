package serverutils

import (
	"errors"
	"fmt"
	"time"

	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/logger"
	"customer-notes-be/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIdKey = "request_id"

	HeaderRequestId = "X-Request-ID"
)

// RequestObservability assigns a correlation id, times the request, writes
// one access log line per request and feeds the per-request counters.
// Registered outermost so even rate-limited responses carry the id.
func RequestObservability(log logger.ILogger, collector *metrics.Collector) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.New().String()
		ctx.Locals(RequestIdKey, requestId)
		ctx.Set(HeaderRequestId, requestId)

		start := time.Now()
		err := ctx.Next()
		duration := time.Since(start)

		status := ctx.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		method := ctx.Method()
		path := ctx.Path()

		details := map[string]interface{}{
			"request_id":       requestId,
			"method":           method,
			"path":             path,
			"status_code":      status,
			"duration_seconds": duration.Seconds(),
			"client_ip":        ctx.IP(),
		}
		if err != nil {
			details["error"] = err.Error()
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("http", fmt.Sprintf("%s %s -> %d", method, path, status), details)
		} else {
			log.Info("http", fmt.Sprintf("%s %s -> %d", method, path, status), details)
		}

		collector.Increment(fmt.Sprintf("http_requests_total_%d", status))
		collector.Increment(fmt.Sprintf("http_requests_%s_%s", method, path))
		collector.RecordDuration(fmt.Sprintf("http_request_duration_%s_%s", method, path), duration.Seconds())

		return err
	}
}

// RequestId returns the correlation id assigned to the current request.
func RequestId(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(RequestIdKey).(string); ok {
		return id
	}
	return ""
}

func statusFromError(err error) int {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
