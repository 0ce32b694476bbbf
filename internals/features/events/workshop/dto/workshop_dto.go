package dto

import (
	"time"

	"github.com/google/uuid"

	"suas_backend/internals/features/events/workshop/model"
)

type CreateWorkshopRequest struct {
	EventID          uuid.UUID  `json:"eventId" validate:"required"`
	Name             string     `json:"name" validate:"required,min=2,max=200"`
	Description      string     `json:"description"`
	Photo            string     `json:"photo"`
	Room             string     `json:"room"`
	NumberOfPlaces   int        `json:"numberOfPlaces" validate:"gte=0"`
	Price            float64    `json:"price" validate:"gte=0"`
	StartDate        time.Time  `json:"startDate" validate:"required"`
	EndDate          time.Time  `json:"endDate" validate:"required"`
	IsOnlineWorkshop bool       `json:"isOnlineWorkshop"`
	IsPublic         bool       `json:"isPublic"`
	OwnerID          *uuid.UUID `json:"ownerId"`
}

type UpdateWorkshopRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Description      *string    `json:"description"`
	Photo            *string    `json:"photo"`
	Room             *string    `json:"room"`
	NumberOfPlaces   *int       `json:"numberOfPlaces" validate:"omitempty,gte=0"`
	Price            *float64   `json:"price" validate:"omitempty,gte=0"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	IsOnlineWorkshop *bool      `json:"isOnlineWorkshop"`
	IsPublic         *bool      `json:"isPublic"`
	OwnerID          *uuid.UUID `json:"ownerId"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NOTBEGUN STARTED ONGOING FINISHED"`
}

func (r CreateWorkshopRequest) ToModel() model.Workshop {
	return model.Workshop{
		EventID:          r.EventID,
		Name:             r.Name,
		Description:      r.Description,
		Photo:            r.Photo,
		Room:             r.Room,
		NumberOfPlaces:   r.NumberOfPlaces,
		Price:            r.Price,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IsOnlineWorkshop: r.IsOnlineWorkshop,
		IsPublic:         r.IsPublic,
		OwnerID:          r.OwnerID,
		Status:           model.StatusNotBegun,
		IsActive:         true,
	}
}

func (r UpdateWorkshopRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	if r.Room != nil {
		u["room"] = *r.Room
	}
	if r.NumberOfPlaces != nil {
		u["number_of_places"] = *r.NumberOfPlaces
	}
	if r.Price != nil {
		u["price"] = *r.Price
	}
	if r.StartDate != nil {
		u["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		u["end_date"] = *r.EndDate
	}
	if r.IsOnlineWorkshop != nil {
		u["is_online_workshop"] = *r.IsOnlineWorkshop
	}
	if r.IsPublic != nil {
		u["is_public"] = *r.IsPublic
	}
	if r.OwnerID != nil {
		u["owner_id"] = *r.OwnerID
	}
	return u
}
