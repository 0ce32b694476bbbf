package route

import (
	"github.com/gofiber/fiber/v2"

	"suas_backend/internals/configs"
	"suas_backend/internals/features/files/controller"
)

func FileRoutes(api fiber.Router, cfg configs.Config) {
	ctrl := controller.NewFileController(cfg)

	r := api.Group("/files")
	r.Post("/", ctrl.Upload)
	r.Post("/export-excel", ctrl.ExportExcel)
	r.Get("/:filename", ctrl.Download)
}
