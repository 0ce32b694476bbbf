package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	eventmodel "suas_backend/internals/features/events/event/model"
	"suas_backend/internals/features/events/workshop/dto"
	"suas_backend/internals/features/events/workshop/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type WorkshopController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.Workshop]
}

func NewWorkshopController(db *gorm.DB) *WorkshopController {
	return &WorkshopController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.Workshop]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name", "startDate", "endDate", "price"},
				Filters:      []string{"eventId", "ownerId", "status"},
				BoolFilters:  []string{"isActive", "isPublic", "isApproved", "isOnlineWorkshop"},
				DateFields:   []string{"createdAt", "startDate", "endDate"},
				DefaultLimit: 10,
			},
			Preloads: []string{"Event", "Owner"},
			NotFound: "Atelier introuvable",
		},
	}
}

// checkWindow verifies the workshop dates sit inside its event window. The
// event bounds are widened to start-of-day / end-of-day before comparing.
func checkWindow(event *eventmodel.Event, start, end time.Time) error {
	if end.Before(start) {
		return errors.New("La date de fin doit être postérieure à la date de début")
	}
	y, m, d := event.StartDate.Date()
	windowStart := time.Date(y, m, d, 0, 0, 0, 0, event.StartDate.Location())
	y, m, d = event.EndDate.Date()
	windowEnd := time.Date(y, m, d, 23, 59, 59, 999999999, event.EndDate.Location())

	if start.Before(windowStart) || end.After(windowEnd) {
		return errors.New("Les dates de l'atelier doivent être comprises dans celles de l'événement")
	}
	return nil
}

func (ctrl *WorkshopController) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var event eventmodel.Event
	if err := ctrl.DB.First(&event, "id = ? AND is_active = ?", req.EventID, true).Error; err != nil {
		return helper.Error(c, "Événement introuvable", constants.StatusBadRequest)
	}
	if err := checkWindow(&event, req.StartDate, req.EndDate); err != nil {
		return helper.Error(c, err.Error(), constants.StatusBadRequest)
	}

	if req.Photo != "" {
		var taken int64
		if err := ctrl.DB.Model(&model.Workshop{}).
			Where("photo = ?", req.Photo).
			Count(&taken).Error; err != nil {
			return helper.Error(c, "", constants.StatusInternalServerError)
		} else if taken > 0 {
			return helper.Error(c, "Veuillez changer l'image de l'atelier", constants.StatusConflict)
		}
	}

	workshop := req.ToModel()
	if workshop.IsOnlineWorkshop {
		workshop.AccessKey = uuid.NewString()
	}

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, workshop.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	workshop.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		workshop.CreatedByID = &actorID
		if workshop.OwnerID == nil {
			workshop.OwnerID = &actorID
		}
	}

	if err := ctrl.DB.Create(&workshop).Error; err != nil {
		log.Printf("[ERROR] création atelier: %v", err)
		return helper.Error(c, "Erreur lors de la création de l'atelier", constants.StatusInternalServerError)
	}
	return helper.Success(c, workshop, constants.StatusCreated, "Atelier créé avec succès")
}

func (ctrl *WorkshopController) GetAll(c *fiber.Ctx) error         { return ctrl.res.List(c) }
func (ctrl *WorkshopController) GetAllInactive(c *fiber.Ctx) error { return ctrl.res.ListInactive(c) }
func (ctrl *WorkshopController) GetByID(c *fiber.Ctx) error        { return ctrl.res.GetByID(c) }
func (ctrl *WorkshopController) Delete(c *fiber.Ctx) error         { return ctrl.res.SoftDelete(c) }

func (ctrl *WorkshopController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Atelier restauré avec succès")
}

func (ctrl *WorkshopController) Approve(c *fiber.Ctx) error {
	return ctrl.res.Approve(c, "Atelier approuvé avec succès", nil, nil)
}

func (ctrl *WorkshopController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var workshop model.Workshop
	if err := ctrl.DB.First(&workshop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Atelier introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	start, end := workshop.StartDate, workshop.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	var event eventmodel.Event
	if err := ctrl.DB.First(&event, "id = ?", workshop.EventID).Error; err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	if err := checkWindow(&event, start, end); err != nil {
		return helper.Error(c, err.Error(), constants.StatusBadRequest)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if req.IsOnlineWorkshop != nil && *req.IsOnlineWorkshop && workshop.AccessKey == "" {
		updates["access_key"] = uuid.NewString()
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&workshop).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour atelier: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Atelier mis à jour avec succès")
}

// ChangeStatus moves an active workshop through its lifecycle states.
func (ctrl *WorkshopController) ChangeStatus(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{"status": req.Status}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	res := ctrl.DB.Model(&model.Workshop{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] changement de statut: %v", res.Error)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, "Atelier introuvable", constants.StatusNotFound)
	}
	return helper.Success(c, fiber.Map{"id": id, "status": req.Status}, constants.StatusOK, "Statut mis à jour avec succès")
}

// AccessKey returns the join key of an online workshop.
func (ctrl *WorkshopController) AccessKey(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var workshop model.Workshop
	if err := ctrl.DB.First(&workshop, "id = ? AND is_active = ?", id, true).Error; err != nil {
		return helper.Error(c, "Atelier introuvable", constants.StatusNotFound)
	}
	if !workshop.IsOnlineWorkshop || workshop.AccessKey == "" {
		return helper.Error(c, "Cet atelier n'est pas en ligne", constants.StatusBadRequest)
	}
	return helper.Success(c, fiber.Map{"accessKey": workshop.AccessKey})
}
