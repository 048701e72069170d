package controllers

import (
	"time"

	"shop-backoffice/src/infrastructure/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger emits one structured access-log line per request, tagged
// with a correlation id. The id is threaded into the request's user context
// so every downstream log line carries it too.
func RequestLogger(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		correlationID := uuid.NewString()
		c.Locals("correlationId", correlationID)
		c.SetUserContext(logger.WithCorrelationID(c.UserContext(), correlationID))

		err := c.Next()

		logger.RequestResponse(c.UserContext(), &log.Field{
			URL:            c.OriginalURL(),
			HTTPMethod:     c.Method(),
			HTTPStatusCode: c.Response().StatusCode(),
			Duration:       time.Since(start).Milliseconds(),
			Message:        "HTTP request handled",
			Extra: map[string]any{
				"CorrelationId": correlationID,
			},
		})

		return err
	}
}
