package serverutils

import (
	"errors"

	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler translates errors escaping the handler chain. Intentional
// domain errors keep their status and surface as {"detail": ...}; anything
// else is logged with full detail and collapsed to a uniform opaque 500
// body carrying the correlation id.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Status < fiber.StatusInternalServerError {
			return ctx.Status(appErr.Status).JSON(fiber.Map{"detail": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
		}

		requestId := RequestId(ctx)
		log.Error("http", "unhandled error", map[string]interface{}{
			"request_id": requestId,
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"error":      err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.InternalErrorResponse{
			Error:     "Internal Server Error",
			Message:   "An unexpected error occurred. Please try again later.",
			RequestId: requestId,
		})
	}
}
