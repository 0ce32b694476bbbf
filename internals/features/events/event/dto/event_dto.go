package dto

import (
	"time"

	"github.com/google/uuid"

	"suas_backend/internals/features/events/event/model"
)

type CreateEventRequest struct {
	CategoryID  uuid.UUID  `json:"categoryId" validate:"required"`
	Name        string     `json:"name" validate:"required,min=2,max=200"`
	Description string     `json:"description"`
	Photo       string     `json:"photo"`
	Program     string     `json:"program"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     time.Time  `json:"endDate" validate:"required"`
	OwnerID     *uuid.UUID `json:"ownerId"`
	IsPublic    bool       `json:"isPublic"`
}

type UpdateEventRequest struct {
	CategoryID  *uuid.UUID `json:"categoryId"`
	Name        *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description"`
	Photo       *string    `json:"photo"`
	Program     *string    `json:"program"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	OwnerID     *uuid.UUID `json:"ownerId"`
	IsPublic    *bool      `json:"isPublic"`
}

func (r CreateEventRequest) ToModel() model.Event {
	return model.Event{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Photo:       r.Photo,
		Program:     r.Program,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		OwnerID:     r.OwnerID,
		IsPublic:    r.IsPublic,
		IsActive:    true,
	}
}

func (r UpdateEventRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.CategoryID != nil {
		u["category_id"] = *r.CategoryID
	}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	if r.Program != nil {
		u["program"] = *r.Program
	}
	if r.StartDate != nil {
		u["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		u["end_date"] = *r.EndDate
	}
	if r.OwnerID != nil {
		u["owner_id"] = *r.OwnerID
	}
	if r.IsPublic != nil {
		u["is_public"] = *r.IsPublic
	}
	return u
}
