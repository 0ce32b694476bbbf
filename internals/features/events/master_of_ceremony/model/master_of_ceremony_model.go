package model

import (
	"time"

	"github.com/google/uuid"

	eventmodel "suas_backend/internals/features/events/event/model"
	usermodel "suas_backend/internals/features/users/user/model"
)

type MasterOfCeremony struct {
	ID              uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"referenceNumber" gorm:"column:reference_number"`
	EventID         uuid.UUID  `json:"eventId" gorm:"column:event_id;type:uuid;not null" validate:"required"`
	Name            string     `json:"name" gorm:"column:name" validate:"required,min=2,max=200"`
	FirstName       string     `json:"firstName" gorm:"column:first_name"`
	Description     string     `json:"description" gorm:"column:description;type:text"`
	Photo           string     `json:"photo" gorm:"column:photo"`
	OwnerID         *uuid.UUID `json:"ownerId" gorm:"column:owner_id;type:uuid"`
	IsActive        bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID     *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Event *eventmodel.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Owner *usermodel.User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (MasterOfCeremony) TableName() string {
	return "master_of_ceremonies"
}
