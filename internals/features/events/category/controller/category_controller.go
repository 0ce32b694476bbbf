package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/events/category/dto"
	"suas_backend/internals/features/events/category/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type CategoryController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.Category]
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.Category]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name"},
				BoolFilters:  []string{"isActive"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 100,
			},
			NotFound: "Catégorie introuvable",
		},
	}
}

func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&model.Category{}).Where("name = ?", req.Name).Count(&n).Error; err == nil && n > 0 {
		return helper.Error(c, "Cette catégorie existe déjà", constants.StatusConflict)
	}

	category := model.Category{Name: req.Name, IsActive: true}

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, category.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	category.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		category.CreatedByID = &actorID
	}

	if err := ctrl.DB.Create(&category).Error; err != nil {
		log.Printf("[ERROR] création catégorie: %v", err)
		return helper.Error(c, "Erreur lors de la création de la catégorie", constants.StatusInternalServerError)
	}
	return helper.Success(c, category, constants.StatusCreated, "Catégorie créée avec succès")
}

func (ctrl *CategoryController) GetAll(c *fiber.Ctx) error         { return ctrl.res.List(c) }
func (ctrl *CategoryController) GetAllInactive(c *fiber.Ctx) error { return ctrl.res.ListInactive(c) }
func (ctrl *CategoryController) GetByID(c *fiber.Ctx) error        { return ctrl.res.GetByID(c) }
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error         { return ctrl.res.SoftDelete(c) }

func (ctrl *CategoryController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Catégorie restaurée avec succès")
}

func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Name == nil {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}

	var category model.Category
	if err := ctrl.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Catégorie introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	var n int64
	if err := ctrl.DB.Model(&model.Category{}).
		Where("name = ? AND id <> ?", *req.Name, id).
		Count(&n).Error; err == nil && n > 0 {
		return helper.Error(c, "Cette catégorie existe déjà", constants.StatusConflict)
	}

	updates := map[string]interface{}{"name": *req.Name}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&category).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour catégorie: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Catégorie mise à jour avec succès")
}
