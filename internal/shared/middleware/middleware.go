package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/observability"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "requestID"
)

// RequestID keeps a client supplied X-Request-ID or assigns a new one
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or ""
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}

// AccessLog writes one zerolog line per request
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error().Err(err)
		} else if status >= fiber.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}

// Metrics records request count and latency per registered route
func Metrics(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// label values outlive the request, copy them off the reused buffer
		route := c.Route().Path
		m.ObserveRequest(route, utils.CopyString(c.Method()), responseStatus(c, err), time.Since(start))

		return err
	}
}

// responseStatus is the status the error handler will send for err
func responseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe.Code
		}
		return fiber.StatusInternalServerError
	}
	return c.Response().StatusCode()
}

// ErrorHandler renders unhandled errors as {"error": "..."}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("Unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": msg,
	})
}
