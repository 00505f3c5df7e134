package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// RequestLogger registra método, ruta, status y latencia de cada petición.
// Las respuestas 5xx salen como error, las 4xx como warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
