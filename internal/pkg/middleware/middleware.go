package middleware

import (
	"time"

	"zoo-ticketing/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	Log log.Logger
}

// RequestLogger logs one line per request with method, path, status and
// latency.
func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()

	m.Log.Info(ctx.UserContext(), "http request",
		"method", ctx.Method(),
		"path", ctx.Path(),
		"status", ctx.Response().StatusCode(),
		"duration", time.Since(start).String(),
	)

	return err
}
