package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	"suas_backend/internals/configs"
	categoryRoute "suas_backend/internals/features/events/category/route"
	eventRoute "suas_backend/internals/features/events/event/route"
	eventParticipantRoute "suas_backend/internals/features/events/event_participant/route"
	eventParticipantRoleRoute "suas_backend/internals/features/events/event_participant_role/route"
	mcRoute "suas_backend/internals/features/events/master_of_ceremony/route"
	participantRoute "suas_backend/internals/features/events/participant/route"
	participantRoleRoute "suas_backend/internals/features/events/participant_role/route"
	workshopRoute "suas_backend/internals/features/events/workshop/route"
	fileRoute "suas_backend/internals/features/files/route"
	messageRoute "suas_backend/internals/features/messaging/message/route"
	permissionRoute "suas_backend/internals/features/permissions/permission/route"
	authRoute "suas_backend/internals/features/users/auth/route"
	userRoleRoute "suas_backend/internals/features/users/role/route"
	userRoute "suas_backend/internals/features/users/user/route"
	authMw "suas_backend/internals/middlewares/auth"
	"suas_backend/internals/services/mailer"
	"suas_backend/internals/services/ws"
)

var startTime = time.Now()

// SetupRoutes mounts the whole surface: public auth endpoints, the guarded
// /api group, the websocket hub and the health probe.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, m *mailer.Mailer, hub *ws.Hub) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "connected"
		httpStatus := fiber.StatusOK
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
			httpStatus = fiber.StatusServiceUnavailable
		}
		return c.Status(httpStatus).JSON(fiber.Map{
			"database":      dbStatus,
			"serverTime":    time.Now().Format(time.RFC3339),
			"uptimeSeconds": int(time.Since(startTime).Seconds()),
		})
	})

	api := app.Group("/api")

	// Public surface: registration, login and password reset.
	authRoute.AuthRoutes(api, db, cfg, m)
	userRoute.RegisterRoute(api, db)

	// Everything else requires a valid, non-blacklisted token.
	guarded := api.Group("", authMw.AuthMiddleware(db, cfg.JWTSecret))

	userRoute.UserRoutes(guarded, db)
	userRoleRoute.UserRoleRoutes(guarded, db)
	permissionRoute.PermissionRoutes(guarded, db)
	categoryRoute.CategoryRoutes(guarded, db)
	eventRoute.EventRoutes(guarded, db)
	mcRoute.MasterOfCeremonyRoutes(guarded, db)
	workshopRoute.WorkshopRoutes(guarded, db)
	participantRoleRoute.ParticipantRoleRoutes(guarded, db)
	participantRoute.ParticipantRoutes(guarded, db, m)
	eventParticipantRoleRoute.EventParticipantRoleRoutes(guarded, db)
	eventParticipantRoute.EventParticipantRoutes(guarded, db, m)
	messageRoute.MessageRoutes(guarded, db, hub)
	fileRoute.FileRoutes(guarded, cfg)

	// Live message feed, one room per workshop.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/messages/:workshopId", websocket.New(hub.Handler()))
}
