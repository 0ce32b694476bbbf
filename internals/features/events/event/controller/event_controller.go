package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	categorymodel "suas_backend/internals/features/events/category/model"
	"suas_backend/internals/features/events/event/dto"
	"suas_backend/internals/features/events/event/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type EventController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.Event]
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.Event]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name", "startDate", "endDate"},
				Filters:      []string{"categoryId", "ownerId"},
				BoolFilters:  []string{"isActive", "isPublic", "isApproved"},
				DateFields:   []string{"createdAt", "startDate", "endDate"},
				DefaultLimit: 10,
			},
			Preloads: []string{"Category", "Owner"},
			NotFound: "Événement introuvable",
		},
	}
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return helper.Error(c, "La date de fin doit être postérieure à la date de début", constants.StatusBadRequest)
	}

	var n int64
	if err := ctrl.DB.Model(&categorymodel.Category{}).
		Where("id = ? AND is_active = ?", req.CategoryID, true).
		Count(&n).Error; err != nil || n == 0 {
		return helper.Error(c, "Catégorie introuvable", constants.StatusBadRequest)
	}

	if req.Photo != "" {
		var taken int64
		if err := ctrl.DB.Model(&model.Event{}).
			Where("photo = ?", req.Photo).
			Count(&taken).Error; err != nil {
			return helper.Error(c, "", constants.StatusInternalServerError)
		} else if taken > 0 {
			return helper.Error(c, "Veuillez changer l'image de l'événement", constants.StatusConflict)
		}
	}

	event := req.ToModel()

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, event.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	event.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		event.CreatedByID = &actorID
		if event.OwnerID == nil {
			event.OwnerID = &actorID
		}
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Printf("[ERROR] création événement: %v", err)
		return helper.Error(c, "Erreur lors de la création de l'événement", constants.StatusInternalServerError)
	}
	return helper.Success(c, event, constants.StatusCreated, "Événement créé avec succès")
}

func (ctrl *EventController) GetAll(c *fiber.Ctx) error         { return ctrl.res.List(c) }
func (ctrl *EventController) GetAllInactive(c *fiber.Ctx) error { return ctrl.res.ListInactive(c) }
func (ctrl *EventController) GetByID(c *fiber.Ctx) error        { return ctrl.res.GetByID(c) }
func (ctrl *EventController) Delete(c *fiber.Ctx) error         { return ctrl.res.SoftDelete(c) }

func (ctrl *EventController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Événement restauré avec succès")
}

func (ctrl *EventController) Approve(c *fiber.Ctx) error {
	return ctrl.res.Approve(c, "Événement approuvé avec succès", nil, nil)
}

// GetByOwner lists the active events owned by the user in the path.
func (ctrl *EventController) GetByOwner(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}
	return ctrl.res.ListWhere(c, "owner_id = ?", id)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.Event
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Événement introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	start, end := event.StartDate, event.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if end.Before(start) {
		return helper.Error(c, "La date de fin doit être postérieure à la date de début", constants.StatusBadRequest)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour événement: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Événement mis à jour avec succès")
}
