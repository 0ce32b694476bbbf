package dto

import (
	"github.com/google/uuid"

	"suas_backend/internals/features/events/event_participant/model"
)

type CreateEventParticipantRequest struct {
	EventID                uuid.UUID  `json:"eventId" validate:"required"`
	EventParticipantRoleID *uuid.UUID `json:"eventParticipantRoleId"`
	OwnerID                *uuid.UUID `json:"ownerId"`
	Name                   string     `json:"name" validate:"required,min=2,max=200"`
	FirstName              string     `json:"firstName"`
	CompanyName            string     `json:"companyName"`
	BusinessSector         string     `json:"businessSector"`
	FunctionC              string     `json:"functionC"`
	PositionInCompany      string     `json:"positionInCompany"`
	Photo                  string     `json:"photo"`
	Description            string     `json:"description"`
}

type UpdateEventParticipantRequest struct {
	EventParticipantRoleID *uuid.UUID `json:"eventParticipantRoleId"`
	Name                   *string    `json:"name" validate:"omitempty,min=2,max=200"`
	FirstName              *string    `json:"firstName"`
	CompanyName            *string    `json:"companyName"`
	BusinessSector         *string    `json:"businessSector"`
	FunctionC              *string    `json:"functionC"`
	PositionInCompany      *string    `json:"positionInCompany"`
	Photo                  *string    `json:"photo"`
	Description            *string    `json:"description"`
}

func (r CreateEventParticipantRequest) ToModel() model.EventParticipant {
	return model.EventParticipant{
		EventID:                r.EventID,
		EventParticipantRoleID: r.EventParticipantRoleID,
		OwnerID:                r.OwnerID,
		Name:                   r.Name,
		FirstName:              r.FirstName,
		CompanyName:            r.CompanyName,
		BusinessSector:         r.BusinessSector,
		FunctionC:              r.FunctionC,
		PositionInCompany:      r.PositionInCompany,
		Photo:                  r.Photo,
		Description:            r.Description,
		IsActive:               true,
	}
}

func (r UpdateEventParticipantRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.EventParticipantRoleID != nil {
		u["event_participant_role_id"] = *r.EventParticipantRoleID
	}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.FirstName != nil {
		u["first_name"] = *r.FirstName
	}
	if r.CompanyName != nil {
		u["company_name"] = *r.CompanyName
	}
	if r.BusinessSector != nil {
		u["business_sector"] = *r.BusinessSector
	}
	if r.FunctionC != nil {
		u["function_c"] = *r.FunctionC
	}
	if r.PositionInCompany != nil {
		u["position_in_company"] = *r.PositionInCompany
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	return u
}
