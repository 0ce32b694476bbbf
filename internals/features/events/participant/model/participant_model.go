package model

import (
	"time"

	"github.com/google/uuid"

	rolemodel "suas_backend/internals/features/events/participant_role/model"
	workshopmodel "suas_backend/internals/features/events/workshop/model"
	usermodel "suas_backend/internals/features/users/user/model"
)

type Participant struct {
	ID                    uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber       string     `json:"referenceNumber" gorm:"column:reference_number"`
	WorkshopID            uuid.UUID  `json:"workshopId" gorm:"column:workshop_id;type:uuid;not null" validate:"required"`
	Name                  string     `json:"name" gorm:"column:name" validate:"required,min=2,max=200"`
	Photo                 string     `json:"photo" gorm:"column:photo"`
	Description           string     `json:"description" gorm:"column:description;type:text"`
	ParticipantRoleID     *uuid.UUID `json:"participantRoleId" gorm:"column:participant_role_id;type:uuid"`
	OwnerID               *uuid.UUID `json:"ownerId" gorm:"column:owner_id;type:uuid"`
	IsOnlineParticipation bool       `json:"isOnlineParticipation" gorm:"column:is_online_participation;default:false"`
	IsActiveMicrophone    bool       `json:"isActiveMicrophone" gorm:"column:is_active_microphone;default:false"`
	IsHandRaised          bool       `json:"isHandRaised" gorm:"column:is_hand_raised;default:false"`
	IsApproved            bool       `json:"isApproved" gorm:"column:is_approved;default:false"`
	ApprovedByID          *uuid.UUID `json:"approvedById" gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt            *time.Time `json:"approvedAt" gorm:"column:approved_at"`
	IsActive              bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID           *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID           *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt             time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt             time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Workshop        *workshopmodel.Workshop    `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	ParticipantRole *rolemodel.ParticipantRole `json:"participantRole,omitempty" gorm:"foreignKey:ParticipantRoleID"`
	Owner           *usermodel.User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Participant) TableName() string {
	return "participants"
}
