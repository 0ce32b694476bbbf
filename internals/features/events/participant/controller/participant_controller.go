package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/events/participant/dto"
	"suas_backend/internals/features/events/participant/model"
	workshopmodel "suas_backend/internals/features/events/workshop/model"
	usermodel "suas_backend/internals/features/users/user/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
	"suas_backend/internals/services/mailer"
)

type ParticipantController struct {
	DB       *gorm.DB
	Mailer   *mailer.Mailer
	validate *validator.Validate
	res      *resource.Resource[model.Participant]
}

func NewParticipantController(db *gorm.DB, m *mailer.Mailer) *ParticipantController {
	return &ParticipantController{
		DB:       db,
		Mailer:   m,
		validate: validator.New(),
		res: &resource.Resource[model.Participant]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "name"},
				Filters:      []string{"workshopId", "participantRoleId", "ownerId"},
				BoolFilters:  []string{"isActive", "isApproved", "isOnlineParticipation", "isActiveMicrophone", "isHandRaised"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 10,
			},
			Preloads: []string{"Workshop", "ParticipantRole", "Owner"},
			NotFound: "Participant introuvable",
		},
	}
}

func (ctrl *ParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateParticipantRequest
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

	participant := req.ToModel()

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		participant.CreatedByID = &actorID
		if participant.OwnerID == nil {
			participant.OwnerID = &actorID
		}
	}

	if participant.OwnerID != nil {
		var dup int64
		if err := ctrl.DB.Model(&model.Participant{}).
			Where("workshop_id = ? AND owner_id = ? AND is_active = ?", participant.WorkshopID, *participant.OwnerID, true).
			Count(&dup).Error; err != nil {
			return helper.Error(c, "", constants.StatusInternalServerError)
		} else if dup > 0 {
			return helper.Error(c, "Ce participant existe déjà pour cet atelier", constants.StatusConflict)
		}
	}

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, participant.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	participant.ReferenceNumber = ref

	if err := ctrl.DB.Create(&participant).Error; err != nil {
		log.Printf("[ERROR] création participant: %v", err)
		return helper.Error(c, "Erreur lors de la création du participant", constants.StatusInternalServerError)
	}
	return helper.Success(c, participant, constants.StatusCreated, "Participant créé avec succès")
}

func (ctrl *ParticipantController) GetAll(c *fiber.Ctx) error { return ctrl.res.List(c) }
func (ctrl *ParticipantController) GetAllInactive(c *fiber.Ctx) error {
	return ctrl.res.ListInactive(c)
}
func (ctrl *ParticipantController) GetByID(c *fiber.Ctx) error { return ctrl.res.GetByID(c) }
func (ctrl *ParticipantController) Delete(c *fiber.Ctx) error  { return ctrl.res.SoftDelete(c) }

func (ctrl *ParticipantController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Participant restauré avec succès")
}

// Approve admits a participant into a workshop. The capacity of the workshop
// is checked first; on success the owner is notified by email, best-effort.
func (ctrl *ParticipantController) Approve(c *fiber.Ctx) error {
	pre := func(p *model.Participant) error {
		var workshop workshopmodel.Workshop
		if err := ctrl.DB.First(&workshop, "id = ?", p.WorkshopID).Error; err != nil {
			return errors.New("Atelier introuvable")
		}
		if workshop.NumberOfPlaces <= 0 {
			return nil
		}
		var approved int64
		if err := ctrl.DB.Model(&model.Participant{}).
			Where("workshop_id = ? AND is_approved = ? AND is_active = ?", p.WorkshopID, true, true).
			Count(&approved).Error; err != nil {
			return err
		}
		if approved >= int64(workshop.NumberOfPlaces) {
			return &resource.StatusError{
				Key:     constants.StatusConflict,
				Message: "Plus de places disponibles",
			}
		}
		return nil
	}

	post := func(p *model.Participant) {
		if p.OwnerID == nil {
			return
		}
		var owner usermodel.User
		if err := ctrl.DB.First(&owner, "id = ?", *p.OwnerID).Error; err != nil || owner.Email == "" {
			return
		}
		ctrl.Mailer.SendAsync(owner.Email,
			"Participation approuvée",
			"Votre participation est confirmée",
			"Votre inscription à l'atelier a été approuvée. Nous avons hâte de vous y retrouver.")
	}

	return ctrl.res.Approve(c, "Participant approuvé avec succès", pre, post)
}

func (ctrl *ParticipantController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var participant model.Participant
	if err := ctrl.DB.First(&participant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Participant introuvable", constants.StatusNotFound)
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
		log.Printf("[ERROR] mise à jour participant: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Participant mis à jour avec succès")
}

// ChangeMicState inverts the microphone flag of an active participant.
// No body is expected, the current value decides the next one.
func (ctrl *ParticipantController) ChangeMicState(c *fiber.Ctx) error {
	return ctrl.changeFlag(c, "is_active_microphone", "État du microphone mis à jour avec succès")
}

// ChangeHandState raises or lowers the hand of an active participant.
func (ctrl *ParticipantController) ChangeHandState(c *fiber.Ctx) error {
	return ctrl.changeFlag(c, "is_hand_raised", "État de la main mis à jour avec succès")
}

func (ctrl *ParticipantController) changeFlag(c *fiber.Ctx, column, message string) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var participant model.Participant
	if err := ctrl.DB.First(&participant, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Participant non trouvé ou inactif", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	var next bool
	switch column {
	case "is_hand_raised":
		participant.IsHandRaised = !participant.IsHandRaised
		next = participant.IsHandRaised
	default:
		participant.IsActiveMicrophone = !participant.IsActiveMicrophone
		next = participant.IsActiveMicrophone
	}
	if err := ctrl.DB.Model(&participant).Update(column, next).Error; err != nil {
		log.Printf("[ERROR] changement d'état %s: %v", column, err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}
	return helper.Success(c, participant, constants.StatusOK, message)
}
