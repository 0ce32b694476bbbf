package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/events/participant_role/dto"
	"suas_backend/internals/features/events/participant_role/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type ParticipantRoleController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.ParticipantRole]
}

func NewParticipantRoleController(db *gorm.DB) *ParticipantRoleController {
	return &ParticipantRoleController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.ParticipantRole]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name"},
				BoolFilters:  []string{"isActive"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 100,
			},
			NotFound: "Rôle de participant introuvable",
		},
	}
}

func (ctrl *ParticipantRoleController) Create(c *fiber.Ctx) error {
	var req dto.CreateParticipantRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&model.ParticipantRole{}).Where("name = ?", req.Name).Count(&n).Error; err == nil && n > 0 {
		return helper.Error(c, "Un rôle portant ce nom existe déjà", constants.StatusConflict)
	}

	role := model.ParticipantRole{
		Name:           req.Name,
		PermissionList: pq.StringArray(req.PermissionList),
		IsActive:       true,
	}

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, role.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	role.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		role.CreatedByID = &actorID
	}

	if err := ctrl.DB.Create(&role).Error; err != nil {
		log.Printf("[ERROR] création rôle de participant: %v", err)
		return helper.Error(c, "Erreur lors de la création du rôle", constants.StatusInternalServerError)
	}
	return helper.Success(c, role, constants.StatusCreated, "Rôle créé avec succès")
}

func (ctrl *ParticipantRoleController) GetAll(c *fiber.Ctx) error { return ctrl.res.List(c) }
func (ctrl *ParticipantRoleController) GetAllInactive(c *fiber.Ctx) error {
	return ctrl.res.ListInactive(c)
}
func (ctrl *ParticipantRoleController) GetByID(c *fiber.Ctx) error { return ctrl.res.GetByID(c) }
func (ctrl *ParticipantRoleController) Delete(c *fiber.Ctx) error  { return ctrl.res.SoftDelete(c) }

func (ctrl *ParticipantRoleController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Rôle restauré avec succès")
}

func (ctrl *ParticipantRoleController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateParticipantRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var role model.ParticipantRole
	if err := ctrl.DB.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Rôle de participant introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PermissionList != nil {
		updates["permission_list"] = pq.StringArray(*req.PermissionList)
	}
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&role).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour rôle de participant: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Rôle mis à jour avec succès")
}
