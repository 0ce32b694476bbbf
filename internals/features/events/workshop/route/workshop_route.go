package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/workshop/controller"
)

func WorkshopRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWorkshopController(db)

	r := api.Group("/workshops")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
	r.Patch("/approved/:id", ctrl.Approve)
	r.Patch("/changestatusworkshop/:id", ctrl.ChangeStatus)
	r.Get("/accesskey/:id", ctrl.AccessKey)
}
