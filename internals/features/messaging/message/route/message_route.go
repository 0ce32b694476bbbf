package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/features/messaging/message/controller"
	"suas_backend/internals/services/ws"
)

func MessageRoutes(api fiber.Router, db *gorm.DB, hub *ws.Hub) {
	ctrl := controller.NewMessageController(db, hub)

	r := api.Group("/messages")
	r.Post("/create", ctrl.Create)
	r.Get("/", ctrl.GetAll)
	r.Get("/inactifs", ctrl.GetAllInactive)
	r.Get("/workshop/:id", ctrl.GetByWorkshop)
	r.Get("/:id", ctrl.GetByID)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id", ctrl.Restore)
}
