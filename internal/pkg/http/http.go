package http

import (
	"fmt"
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(recover.New())

	return app
}

func StartHttpServer(app *fiber.App, port int) {
	if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}
