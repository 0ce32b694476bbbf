package model

import (
	"time"

	"github.com/google/uuid"

	participantmodel "suas_backend/internals/features/events/participant/model"
	workshopmodel "suas_backend/internals/features/events/workshop/model"
)

type Message struct {
	ID              uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"referenceNumber" gorm:"column:reference_number"`
	WorkshopID      uuid.UUID  `json:"workshopId" gorm:"column:workshop_id;type:uuid;not null" validate:"required"`
	ParticipantID   *uuid.UUID `json:"participantId" gorm:"column:participant_id;type:uuid"`
	Content         string     `json:"content" gorm:"column:content;type:text" validate:"required"`
	Tag             string     `json:"tag" gorm:"column:tag"`
	URLFile         string     `json:"urlFile" gorm:"column:url_file"`
	MessageType     string     `json:"messageType" gorm:"column:message_type"`
	IsActive        bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID     *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Workshop    *workshopmodel.Workshop       `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	Participant *participantmodel.Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
}

func (Message) TableName() string {
	return "messages"
}
