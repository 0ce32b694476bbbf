package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/event/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	r := api.Group("/events")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/owner/:id", ctrl.GetByOwner)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
	r.Patch("/approved/:id", ctrl.Approve)
}
