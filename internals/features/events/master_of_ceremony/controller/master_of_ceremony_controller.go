package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	eventmodel "suas_backend/internals/features/events/event/model"
	"suas_backend/internals/features/events/master_of_ceremony/dto"
	"suas_backend/internals/features/events/master_of_ceremony/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type MasterOfCeremonyController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.MasterOfCeremony]
}

func NewMasterOfCeremonyController(db *gorm.DB) *MasterOfCeremonyController {
	return &MasterOfCeremonyController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.MasterOfCeremony]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "firstName", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name", "firstName"},
				Filters:      []string{"eventId", "ownerId"},
				BoolFilters:  []string{"isActive"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 10,
			},
			Preloads: []string{"Event", "Owner"},
			NotFound: "Maître de cérémonie introuvable",
		},
	}
}

func (ctrl *MasterOfCeremonyController) Create(c *fiber.Ctx) error {
	var req dto.CreateMasterOfCeremonyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&eventmodel.Event{}).
		Where("id = ? AND is_active = ?", req.EventID, true).
		Count(&n).Error; err != nil || n == 0 {
		return helper.Error(c, "Événement introuvable", constants.StatusBadRequest)
	}

	mc := req.ToModel()

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, mc.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	mc.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		mc.CreatedByID = &actorID
		if mc.OwnerID == nil {
			mc.OwnerID = &actorID
		}
	}

	if err := ctrl.DB.Create(&mc).Error; err != nil {
		log.Printf("[ERROR] création maître de cérémonie: %v", err)
		return helper.Error(c, "Erreur lors de la création du maître de cérémonie", constants.StatusInternalServerError)
	}
	return helper.Success(c, mc, constants.StatusCreated, "Maître de cérémonie créé avec succès")
}

func (ctrl *MasterOfCeremonyController) GetAll(c *fiber.Ctx) error { return ctrl.res.List(c) }
func (ctrl *MasterOfCeremonyController) GetAllInactive(c *fiber.Ctx) error {
	return ctrl.res.ListInactive(c)
}
func (ctrl *MasterOfCeremonyController) GetByID(c *fiber.Ctx) error { return ctrl.res.GetByID(c) }
func (ctrl *MasterOfCeremonyController) Delete(c *fiber.Ctx) error  { return ctrl.res.SoftDelete(c) }

func (ctrl *MasterOfCeremonyController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Maître de cérémonie restauré avec succès")
}

func (ctrl *MasterOfCeremonyController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateMasterOfCeremonyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mc model.MasterOfCeremony
	if err := ctrl.DB.First(&mc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Maître de cérémonie introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&mc).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour maître de cérémonie: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Maître de cérémonie mis à jour avec succès")
}
