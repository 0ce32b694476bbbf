package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"suas_backend/internals/constants"
	helper "suas_backend/internals/helpers"
)

// Global limiter, applied to the whole /api surface.
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(100, 1*time.Minute,
		"Trop de requêtes. Veuillez réessayer plus tard.")
}

// Stricter limiter for login attempts.
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, 1*time.Minute,
		"Trop de tentatives de connexion. Réessayez dans quelques instants.")
}

// Limiter for password reset requests.
func ForgotPasswordRateLimiter() fiber.Handler {
	return ipLimiter(2, 10*time.Minute,
		"Trop de demandes de réinitialisation. Réessayez dans 10 minutes.")
}

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Error(c, message, constants.StatusTooManyRequests)
		},
	})
}
