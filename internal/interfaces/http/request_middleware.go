package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestID asigna X-Request-ID (respeta el que venga del proxy).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	})
}

// GetRequestID devuelve el request id o "".
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// AccessLog una línea por petición: método, ruta, status, latencia, request_id e IP.
func AccessLog(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := logger.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = logger.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = logger.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(c)).
			Str("ip", c.IP()).
			Msg("http")
		return err
	}
}
