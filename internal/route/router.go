package router

import (
	"zoo-ticketing/internal/module/order/handler"
	"zoo-ticketing/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerOrder *handler.OrderHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	api := app.Group("/api", m.RequestLogger)
	api.Post("/school-orders", handlerOrder.CreateSchoolOrder)

	return app
}
