package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/events/event_participant/dto"
	"suas_backend/internals/features/events/event_participant/model"
	eventmodel "suas_backend/internals/features/events/event/model"
	usermodel "suas_backend/internals/features/users/user/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
	"suas_backend/internals/services/mailer"
)

type EventParticipantController struct {
	DB       *gorm.DB
	Mailer   *mailer.Mailer
	validate *validator.Validate
	res      *resource.Resource[model.EventParticipant]
}

func NewEventParticipantController(db *gorm.DB, m *mailer.Mailer) *EventParticipantController {
	return &EventParticipantController{
		DB:       db,
		Mailer:   m,
		validate: validator.New(),
		res: &resource.Resource[model.EventParticipant]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "firstName", "companyName", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name", "firstName", "companyName"},
				Filters:      []string{"eventId", "eventParticipantRoleId", "ownerId"},
				BoolFilters:  []string{"isActive", "isApproved"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 10,
			},
			Preloads: []string{"Event", "EventParticipantRole", "Owner"},
			NotFound: "Participant d'événement introuvable",
		},
	}
}

func (ctrl *EventParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventParticipantRequest
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

	participant := req.ToModel()

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, participant.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	participant.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		participant.CreatedByID = &actorID
		if participant.OwnerID == nil {
			participant.OwnerID = &actorID
		}
	}

	if err := ctrl.DB.Create(&participant).Error; err != nil {
		log.Printf("[ERROR] création participant d'événement: %v", err)
		return helper.Error(c, "Erreur lors de la création du participant", constants.StatusInternalServerError)
	}
	return helper.Success(c, participant, constants.StatusCreated, "Participant créé avec succès")
}

func (ctrl *EventParticipantController) GetAll(c *fiber.Ctx) error { return ctrl.res.List(c) }
func (ctrl *EventParticipantController) GetAllInactive(c *fiber.Ctx) error {
	return ctrl.res.ListInactive(c)
}
func (ctrl *EventParticipantController) GetByID(c *fiber.Ctx) error { return ctrl.res.GetByID(c) }
func (ctrl *EventParticipantController) Delete(c *fiber.Ctx) error  { return ctrl.res.SoftDelete(c) }

func (ctrl *EventParticipantController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Participant restauré avec succès")
}

// Approve confirms the registration and notifies its owner by email,
// best-effort.
func (ctrl *EventParticipantController) Approve(c *fiber.Ctx) error {
	post := func(p *model.EventParticipant) {
		if p.OwnerID == nil {
			return
		}
		var owner usermodel.User
		if err := ctrl.DB.First(&owner, "id = ?", *p.OwnerID).Error; err != nil || owner.Email == "" {
			return
		}
		ctrl.Mailer.SendAsync(owner.Email,
			"Inscription approuvée",
			"Votre inscription est confirmée",
			"Votre inscription à l'événement a été approuvée. Nous avons hâte de vous y retrouver.")
	}
	return ctrl.res.Approve(c, "Participant approuvé avec succès", nil, post)
}

func (ctrl *EventParticipantController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateEventParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var participant model.EventParticipant
	if err := ctrl.DB.First(&participant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Participant d'événement introuvable", constants.StatusNotFound)
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

	if err := ctrl.DB.Model(&participant).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour participant d'événement: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Participant mis à jour avec succès")
}
