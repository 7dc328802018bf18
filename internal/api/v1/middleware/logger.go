package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	log "github.com/David-H-Afonso/gamesdatabase/internal/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		latency := time.Since(start)

		log.InfoWithFields("Request", map[string]interface{}{
			"status":  c.Response().StatusCode(),
			"latency": latency.String(),
			"ip":      c.IP(),
			"method":  c.Method(),
			"path":    c.Path(),
		})

		return err
	}
}
