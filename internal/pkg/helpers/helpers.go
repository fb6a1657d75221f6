package helpers

import (
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func RespSuccess(ctx *fiber.Ctx, _ log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    data,
		"message": message,
	})
}

// RespError writes the {"error": ...} envelope the API exposes for every
// failure. The status comes from the AppError code when there is one.
func RespError(ctx *fiber.Ctx, _ log.Logger, err error) error {
	return ctx.Status(errors.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
