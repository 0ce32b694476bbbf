package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/event_participant/controller"
	"suas_backend/internals/services/mailer"
)

func EventParticipantRoutes(api fiber.Router, db *gorm.DB, m *mailer.Mailer) {
	ctrl := controller.NewEventParticipantController(db, m)

	r := api.Group("/eventparticipants")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
	r.Patch("/approved/:id", ctrl.Approve)
}
