package dto

import (
	"github.com/google/uuid"

	"suas_backend/internals/features/events/participant/model"
)

type CreateParticipantRequest struct {
	WorkshopID            uuid.UUID  `json:"workshopId" validate:"required"`
	Name                  string     `json:"name" validate:"required,min=2,max=200"`
	Photo                 string     `json:"photo"`
	Description           string     `json:"description"`
	ParticipantRoleID     *uuid.UUID `json:"participantRoleId"`
	OwnerID               *uuid.UUID `json:"ownerId"`
	IsOnlineParticipation bool       `json:"isOnlineParticipation"`
}

type UpdateParticipantRequest struct {
	Name                  *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Photo                 *string    `json:"photo"`
	Description           *string    `json:"description"`
	ParticipantRoleID     *uuid.UUID `json:"participantRoleId"`
	IsOnlineParticipation *bool      `json:"isOnlineParticipation"`
}

func (r CreateParticipantRequest) ToModel() model.Participant {
	return model.Participant{
		WorkshopID:            r.WorkshopID,
		Name:                  r.Name,
		Photo:                 r.Photo,
		Description:           r.Description,
		ParticipantRoleID:     r.ParticipantRoleID,
		OwnerID:               r.OwnerID,
		IsOnlineParticipation: r.IsOnlineParticipation,
		IsActive:              true,
	}
}

func (r UpdateParticipantRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.ParticipantRoleID != nil {
		u["participant_role_id"] = *r.ParticipantRoleID
	}
	if r.IsOnlineParticipation != nil {
		u["is_online_participation"] = *r.IsOnlineParticipation
	}
	return u
}
