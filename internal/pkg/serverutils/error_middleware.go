package serverutils

import (
	"errors"

	"studybuddy-be/internal/pkg/apperrors"
	"studybuddy-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors to the wire format the
// frontend expects: a status code plus {"detail": "..."}. No structured
// error codes are exposed, only the message text.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError

		var notFound *apperrors.NotFoundError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &notFound):
			status = fiber.StatusNotFound
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(fiber.Map{
			"detail": err.Error(),
		})
	}
}
