package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/master_of_ceremony/controller"
)

func MasterOfCeremonyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMasterOfCeremonyController(db)

	r := api.Group("/masterofceremonies")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
}
