package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/category/controller"
)

func CategoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	r := api.Group("/categories")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
}
