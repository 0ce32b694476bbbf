package model

import (
	"time"

	"github.com/google/uuid"

	eventmodel "suas_backend/internals/features/events/event/model"
	usermodel "suas_backend/internals/features/users/user/model"
)

// Workshop lifecycle states.
const (
	StatusNotBegun = "NOTBEGUN"
	StatusStarted  = "STARTED"
	StatusOngoing  = "ONGOING"
	StatusFinished = "FINISHED"
)

type Workshop struct {
	ID               uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber  string     `json:"referenceNumber" gorm:"column:reference_number"`
	EventID          uuid.UUID  `json:"eventId" gorm:"column:event_id;type:uuid;not null" validate:"required"`
	Name             string     `json:"name" gorm:"column:name;not null" validate:"required,min=2,max=200"`
	Description      string     `json:"description" gorm:"column:description;type:text"`
	Photo            string     `json:"photo" gorm:"column:photo"`
	Room             string     `json:"room" gorm:"column:room"`
	NumberOfPlaces   int        `json:"numberOfPlaces" gorm:"column:number_of_places;default:0" validate:"gte=0"`
	Price            float64    `json:"price" gorm:"column:price;default:0" validate:"gte=0"`
	StartDate        time.Time  `json:"startDate" gorm:"column:start_date;not null" validate:"required"`
	EndDate          time.Time  `json:"endDate" gorm:"column:end_date;not null" validate:"required"`
	IsOnlineWorkshop bool       `json:"isOnlineWorkshop" gorm:"column:is_online_workshop;default:false"`
	IsPublic         bool       `json:"isPublic" gorm:"column:is_public;default:false"`
	Status           string     `json:"status" gorm:"column:status;default:NOTBEGUN" validate:"omitempty,oneof=NOTBEGUN STARTED ONGOING FINISHED"`
	AccessKey        string     `json:"accessKey,omitempty" gorm:"column:access_key"`
	OwnerID          *uuid.UUID `json:"ownerId" gorm:"column:owner_id;type:uuid"`
	IsApproved       bool       `json:"isApproved" gorm:"column:is_approved;default:false"`
	ApprovedByID     *uuid.UUID `json:"approvedById" gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt       *time.Time `json:"approvedAt" gorm:"column:approved_at"`
	IsActive         bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID      *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID      *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Event *eventmodel.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Owner *usermodel.User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Workshop) TableName() string {
	return "workshops"
}
