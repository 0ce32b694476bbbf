package dto

import (
	"github.com/google/uuid"

	"suas_backend/internals/features/events/master_of_ceremony/model"
)

type CreateMasterOfCeremonyRequest struct {
	EventID     uuid.UUID  `json:"eventId" validate:"required"`
	Name        string     `json:"name" validate:"required,min=2,max=200"`
	FirstName   string     `json:"firstName"`
	Description string     `json:"description"`
	Photo       string     `json:"photo"`
	OwnerID     *uuid.UUID `json:"ownerId"`
}

type UpdateMasterOfCeremonyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	FirstName   *string `json:"firstName"`
	Description *string `json:"description"`
	Photo       *string `json:"photo"`
}

func (r CreateMasterOfCeremonyRequest) ToModel() model.MasterOfCeremony {
	return model.MasterOfCeremony{
		EventID:     r.EventID,
		Name:        r.Name,
		FirstName:   r.FirstName,
		Description: r.Description,
		Photo:       r.Photo,
		OwnerID:     r.OwnerID,
		IsActive:    true,
	}
}

func (r UpdateMasterOfCeremonyRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.FirstName != nil {
		u["first_name"] = *r.FirstName
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	return u
}
