package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"suas_backend/internals/configs"
	database "suas_backend/internals/databases"
	scheduler "suas_backend/internals/features/users/auth/scheduler"
	middlewares "suas_backend/internals/middlewares"
	"suas_backend/internals/middlewares/logger"
	routes "suas_backend/internals/route"
	seeds "suas_backend/internals/seeds"
	"suas_backend/internals/services/mailer"
	"suas_backend/internals/services/ws"
)

func main() {
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.TrustedProxies,
		BodyLimit:               10 * 1024 * 1024,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.GlobalRateLimiter())

	// Request-ID + per-request timeout guard.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	if configs.GetEnv("RUN_SEEDS", "false") == "true" {
		seeds.RunAllSeeds(db)
	}

	scheduler.StartCleanupScheduler(db)

	m := mailer.New(cfg)
	hub := ws.NewHub()

	routes.SetupRoutes(app, db, cfg, m, hub)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(db)
}
