package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"suas_backend/internals/configs"
)

// CorsMiddleware builds the CORS policy. Origins come from ALLOWED_ORIGINS
// (comma separated), with the local dev fronts as fallback.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("ALLOWED_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://localhost:4200",
		"http://127.0.0.1:5500",
	}, ","))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
