package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yoloeats-be/internal/pkg/apperr"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the
// standard error envelope. Application errors map through their code; raw
// errors collapse to 500 so internal text never reaches clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := apperr.HTTPStatus(err)
		return ctx.Status(status).JSON(ErrorResponse(status, apperr.PublicMessageOf(err)))
	}
}
