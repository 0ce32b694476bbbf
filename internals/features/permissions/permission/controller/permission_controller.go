package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/permissions/permission/dto"
	"suas_backend/internals/features/permissions/permission/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type PermissionController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.Permission]
}

func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.Permission]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name"},
				BoolFilters:  []string{"isActive"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 100,
			},
			NotFound: "Permission introuvable",
		},
	}
}

func (ctrl *PermissionController) Create(c *fiber.Ctx) error {
	var req dto.CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&model.Permission{}).Where("name = ?", req.Name).Count(&n).Error; err == nil && n > 0 {
		return helper.Error(c, "Une permission portant ce nom existe déjà", constants.StatusConflict)
	}

	permission := model.Permission{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, permission.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	permission.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		permission.CreatedByID = &actorID
	}

	if err := ctrl.DB.Create(&permission).Error; err != nil {
		log.Printf("[ERROR] création permission: %v", err)
		return helper.Error(c, "Erreur lors de la création de la permission", constants.StatusInternalServerError)
	}
	return helper.Success(c, permission, constants.StatusCreated, "Permission créée avec succès")
}

func (ctrl *PermissionController) GetAll(c *fiber.Ctx) error         { return ctrl.res.List(c) }
func (ctrl *PermissionController) GetAllInactive(c *fiber.Ctx) error { return ctrl.res.ListInactive(c) }
func (ctrl *PermissionController) GetByID(c *fiber.Ctx) error        { return ctrl.res.GetByID(c) }
func (ctrl *PermissionController) Delete(c *fiber.Ctx) error         { return ctrl.res.SoftDelete(c) }

func (ctrl *PermissionController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Permission restaurée avec succès")
}

func (ctrl *PermissionController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var permission model.Permission
	if err := ctrl.DB.First(&permission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Permission introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&permission).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour permission: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Permission mise à jour avec succès")
}
