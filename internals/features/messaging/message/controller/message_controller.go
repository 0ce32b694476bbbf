package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	workshopmodel "suas_backend/internals/features/events/workshop/model"
	"suas_backend/internals/features/messaging/message/dto"
	"suas_backend/internals/features/messaging/message/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
	"suas_backend/internals/services/ws"
)

type MessageController struct {
	DB       *gorm.DB
	Hub      *ws.Hub
	validate *validator.Validate
	res      *resource.Resource[model.Message]
}

func NewMessageController(db *gorm.DB, hub *ws.Hub) *MessageController {
	return &MessageController{
		DB:       db,
		Hub:      hub,
		validate: validator.New(),
		res: &resource.Resource[model.Message]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"content", "tag", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "tag"},
				Filters:      []string{"workshopId", "participantId", "messageType"},
				BoolFilters:  []string{"isActive"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 100,
			},
			Preloads: []string{"Participant"},
			NotFound: "Message introuvable",
		},
	}
}

// Create persists the message and pushes it to the workshop's websocket
// room.
func (ctrl *MessageController) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&workshopmodel.Workshop{}).
		Where("id = ? AND is_active = ?", req.WorkshopID, true).
		Count(&n).Error; err != nil || n == 0 {
		return helper.Error(c, "Atelier introuvable", constants.StatusBadRequest)
	}

	message := req.ToModel()

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, message.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	message.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		message.CreatedByID = &actorID
	}

	if err := ctrl.DB.Create(&message).Error; err != nil {
		log.Printf("[ERROR] création message: %v", err)
		return helper.Error(c, "Erreur lors de la création du message", constants.StatusInternalServerError)
	}

	ctrl.Hub.Broadcast(message.WorkshopID.String(), message)

	return helper.Success(c, message, constants.StatusCreated, "Message créé avec succès")
}

func (ctrl *MessageController) GetAll(c *fiber.Ctx) error         { return ctrl.res.List(c) }
func (ctrl *MessageController) GetAllInactive(c *fiber.Ctx) error { return ctrl.res.ListInactive(c) }
func (ctrl *MessageController) GetByID(c *fiber.Ctx) error        { return ctrl.res.GetByID(c) }
func (ctrl *MessageController) Delete(c *fiber.Ctx) error         { return ctrl.res.SoftDelete(c) }

func (ctrl *MessageController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Message restauré avec succès")
}

// GetByWorkshop lists the active messages of one workshop, the history a
// client fetches before switching to the websocket feed.
func (ctrl *MessageController) GetByWorkshop(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}
	return ctrl.res.ListWhere(c, "workshop_id = ?", id)
}

func (ctrl *MessageController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var message model.Message
	if err := ctrl.DB.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Message introuvable", constants.StatusNotFound)
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

	if err := ctrl.DB.Model(&message).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour message: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Message mis à jour avec succès")
}
