package serverutils

import (
	"errors"

	"mobile-order-be/internal/constant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the service error taxonomy into HTTP
// statuses at the outermost edge so controllers can just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		var validationErrs validator.ValidationErrors
		status := fiber.StatusInternalServerError
		switch {
		case errors.As(err, &validationErrs), errors.Is(err, constant.ErrInvalidInput):
			status = fiber.StatusBadRequest
		case errors.Is(err, constant.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, constant.ErrCollaboratorUnavailable):
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, constant.ErrDataInconsistency):
			status = fiber.StatusInternalServerError
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
