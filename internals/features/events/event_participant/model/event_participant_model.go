package model

import (
	"time"

	"github.com/google/uuid"

	eventmodel "suas_backend/internals/features/events/event/model"
	rolemodel "suas_backend/internals/features/events/event_participant_role/model"
	usermodel "suas_backend/internals/features/users/user/model"
)

// EventParticipant is an attendee registration on an event, carrying the
// profile snapshot filled at registration time.
type EventParticipant struct {
	ID                     uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber        string     `json:"referenceNumber" gorm:"column:reference_number"`
	EventID                uuid.UUID  `json:"eventId" gorm:"column:event_id;type:uuid;not null" validate:"required"`
	EventParticipantRoleID *uuid.UUID `json:"eventParticipantRoleId" gorm:"column:event_participant_role_id;type:uuid"`
	OwnerID                *uuid.UUID `json:"ownerId" gorm:"column:owner_id;type:uuid"`
	Name                   string     `json:"name" gorm:"column:name" validate:"required,min=2,max=200"`
	FirstName              string     `json:"firstName" gorm:"column:first_name"`
	CompanyName            string     `json:"companyName" gorm:"column:company_name"`
	BusinessSector         string     `json:"businessSector" gorm:"column:business_sector"`
	FunctionC              string     `json:"functionC" gorm:"column:function_c"`
	PositionInCompany      string     `json:"positionInCompany" gorm:"column:position_in_company"`
	Photo                  string     `json:"photo" gorm:"column:photo"`
	Description            string     `json:"description" gorm:"column:description;type:text"`
	IsApproved             bool       `json:"isApproved" gorm:"column:is_approved;default:false"`
	ApprovedByID           *uuid.UUID `json:"approvedById" gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt             *time.Time `json:"approvedAt" gorm:"column:approved_at"`
	IsActive               bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID            *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID            *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt              time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Event                *eventmodel.Event               `json:"event,omitempty" gorm:"foreignKey:EventID"`
	EventParticipantRole *rolemodel.EventParticipantRole `json:"eventParticipantRole,omitempty" gorm:"foreignKey:EventParticipantRoleID"`
	Owner                *usermodel.User                 `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (EventParticipant) TableName() string {
	return "event_participants"
}
