package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/participant/controller"
	"suas_backend/internals/services/mailer"
)

func ParticipantRoutes(api fiber.Router, db *gorm.DB, m *mailer.Mailer) {
	ctrl := controller.NewParticipantController(db, m)

	r := api.Group("/participants")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
	r.Patch("/approved/:id", ctrl.Approve)
	r.Patch("/changemicstate/:id", ctrl.ChangeMicState)
	r.Patch("/changehandstate/:id", ctrl.ChangeHandState)
}
