package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/users/user/controller"
)

// RegisterRoute exposes account creation without authentication.
func RegisterRoute(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	api.Post("/users/register", ctrl.Create)
}

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	r := api.Group("/users")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
}
