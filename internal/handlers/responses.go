package handlers

import (
	"errors"

	"apicatalogo/internal/patch"
	"apicatalogo/internal/repositories"
	"apicatalogo/internal/services"
	"apicatalogo/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const invalidDataMessage = "Dados inválidos..."

// respondError turns service errors into 404 and 400 responses. Anything
// else is returned so the app's error handler answers 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error, notFoundMessage string) error {
	var validationErrors validation.Errors
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		log.Warn(notFoundMessage, zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMessage,
		})
	case errors.As(err, &validationErrors):
		return validationFailed(c, validationErrors)
	case errors.Is(err, services.ErrInvalidData),
		errors.Is(err, services.ErrIDMismatch),
		errors.Is(err, patch.ErrEmptyDocument),
		errors.Is(err, patch.ErrInvalidOperation):
		log.Warn(invalidDataMessage, zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": invalidDataMessage,
			"error":   err.Error(),
		})
	default:
		return err
	}
}

func validationFailed(c *fiber.Ctx, errs validation.Errors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errs,
	})
}

func invalidData(c *fiber.Ctx, err error) error {
	body := fiber.Map{"message": invalidDataMessage}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// withGuards builds a fresh handler chain so routes never share a backing array.
func withGuards(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
