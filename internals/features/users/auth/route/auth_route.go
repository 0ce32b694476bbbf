package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/configs"
	"suas_backend/internals/features/users/auth/controller"
	"suas_backend/internals/middlewares"
	authMw "suas_backend/internals/middlewares/auth"
	"suas_backend/internals/services/mailer"
)

// AuthRoutes mounts the public auth surface plus logout/me behind the gate.
func AuthRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config, m *mailer.Mailer) {
	ctrl := controller.NewAuthController(db, cfg, m)

	r := api.Group("/auth")
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	r.Post("/reset-password", ctrl.ResetPassword)

	guarded := r.Use(authMw.AuthMiddleware(db, cfg.JWTSecret))
	guarded.Post("/logout", ctrl.Logout)
	guarded.Get("/me", ctrl.Me)
}
