package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
)

// UserRateLimiter guarda un limitador por usuario (o por IP si no hay usuario).
type UserRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	b        int
}

// NewUserRateLimiter crea el registro de limitadores con r eventos/s y ráfaga b.
func NewUserRateLimiter(r rate.Limit, b int) *UserRateLimiter {
	return &UserRateLimiter{limiters: make(map[string]*rate.Limiter), r: r, b: b}
}

// Limiter devuelve (creando si hace falta) el limitador de key.
func (l *UserRateLimiter) Limiter(key string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		return lim
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok = l.limiters[key]; !ok {
		lim = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = lim
	}
	return lim
}

// RateLimit middleware que responde 429 cuando el usuario supera su cuota.
// Va después de AuthMiddleware para limitar por usuario.
func RateLimit(l *UserRateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := GetUserID(c)
		if key == "" {
			key = "ip:" + c.IP()
		}
		if !l.Limiter(key).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas búsquedas, intente de nuevo"})
		}
		return c.Next()
	}
}
