package controller

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"suas_backend/internals/configs"
	"suas_backend/internals/constants"
	helper "suas_backend/internals/helpers"
)

// MaxFileSize caps each uploaded file at 5 MB.
const MaxFileSize = 5 * 1024 * 1024

type FileController struct {
	UploadDir string
}

func NewFileController(cfg configs.Config) *FileController {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Printf("[ERROR] création du dossier uploads: %v", err)
	}
	return &FileController{UploadDir: cfg.UploadDir}
}

// DeduplicateFilename returns a name that does not collide in dir, suffixing
// the base with a timestamp when needed.
func DeduplicateFilename(dir, name string) string {
	if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}

// Upload stores every file of the multipart field "files". Images get a webp
// variant alongside the original.
func (ctrl *FileController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, "Formulaire multipart invalide", constants.StatusBadRequest)
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.Error(c, "Aucun fichier fourni", constants.StatusBadRequest)
	}

	results := make([]fiber.Map, 0, len(files))
	for _, file := range files {
		if file.Size > MaxFileSize {
			return helper.Error(c, "Le fichier "+file.Filename+" dépasse la taille maximale de 5 Mo", constants.StatusBadRequest)
		}

		name := DeduplicateFilename(ctrl.UploadDir, filepath.Base(file.Filename))
		dest := filepath.Join(ctrl.UploadDir, name)
		if err := c.SaveFile(file, dest); err != nil {
			log.Printf("[ERROR] sauvegarde fichier: %v", err)
			return helper.Error(c, "Erreur lors de l'enregistrement du fichier", constants.StatusInternalServerError)
		}

		entry := fiber.Map{
			"filename": name,
			"filePath": dest,
			"url":      "/api/files/" + name,
			"kind":     constants.DetectFileKind(name),
		}
		if constants.IsConvertibleImage(name) {
			if webpName, err := ctrl.convertToWebp(dest); err != nil {
				log.Printf("[WARN] conversion webp de %s: %v", name, err)
			} else {
				entry["webp"] = "/api/files/" + webpName
			}
		}
		results = append(results, entry)
	}

	return helper.Success(c, results, constants.StatusCreated, "Fichiers enregistrés avec succès")
}

// convertToWebp writes a lossy webp variant next to the source image and
// returns its filename.
func (ctrl *FileController) convertToWebp(src string) (string, error) {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}
	return ctrl.encodeWebp(src, img)
}

func (ctrl *FileController) encodeWebp(src string, img image.Image) (string, error) {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".webp"
	name = DeduplicateFilename(ctrl.UploadDir, name)

	out, err := os.Create(filepath.Join(ctrl.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}
	return name, nil
}

// Download streams a stored file by name.
func (ctrl *FileController) Download(c *fiber.Ctx) error {
	name := filepath.Base(c.Params("filename"))
	path := filepath.Join(ctrl.UploadDir, name)
	if _, err := os.Stat(path); err != nil {
		return helper.Error(c, "Fichier introuvable", constants.StatusNotFound)
	}
	return c.SendFile(path)
}

type ExportExcelRequest struct {
	Filename string          `json:"filename"`
	Headings []string        `json:"headings"`
	Data     [][]interface{} `json:"data"`
}

// ExportExcel builds an xlsx from headings plus rows and stores it under the
// upload directory.
func (ctrl *FileController) ExportExcel(c *fiber.Ctx) error {
	var req ExportExcelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if len(req.Headings) == 0 {
		return helper.Error(c, "Les en-têtes sont obligatoires", constants.StatusBadRequest)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range req.Headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return helper.Error(c, "", constants.StatusInternalServerError)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return helper.Error(c, "", constants.StatusInternalServerError)
		}
	}
	for r, row := range req.Data {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return helper.Error(c, "", constants.StatusInternalServerError)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return helper.Error(c, "", constants.StatusInternalServerError)
			}
		}
	}

	name := req.Filename
	if name == "" {
		name = "export"
	}
	name = DeduplicateFilename(ctrl.UploadDir, filepath.Base(name)+".xlsx")

	if err := f.SaveAs(filepath.Join(ctrl.UploadDir, name)); err != nil {
		log.Printf("[ERROR] export excel: %v", err)
		return helper.Error(c, "Erreur lors de la génération du fichier", constants.StatusInternalServerError)
	}

	return helper.Success(c, fiber.Map{
		"filename": name,
		"url":      "/api/files/" + name,
	}, constants.StatusCreated, "Export généré avec succès")
}
