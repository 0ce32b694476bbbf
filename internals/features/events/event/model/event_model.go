package model

import (
	"time"

	"github.com/google/uuid"

	categorymodel "suas_backend/internals/features/events/category/model"
	usermodel "suas_backend/internals/features/users/user/model"
)

type Event struct {
	ID              uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"referenceNumber" gorm:"column:reference_number"`
	CategoryID      uuid.UUID  `json:"categoryId" gorm:"column:category_id;type:uuid;not null" validate:"required"`
	Name            string     `json:"name" gorm:"column:name;not null" validate:"required,min=2,max=200"`
	Description     string     `json:"description" gorm:"column:description;type:text"`
	Photo           string     `json:"photo" gorm:"column:photo"`
	Program         string     `json:"program" gorm:"column:program;type:text"`
	StartDate       time.Time  `json:"startDate" gorm:"column:start_date;not null" validate:"required"`
	EndDate         time.Time  `json:"endDate" gorm:"column:end_date;not null" validate:"required"`
	OwnerID         *uuid.UUID `json:"ownerId" gorm:"column:owner_id;type:uuid"`
	IsPublic        bool       `json:"isPublic" gorm:"column:is_public;default:false"`
	IsApproved      bool       `json:"isApproved" gorm:"column:is_approved;default:false"`
	ApprovedByID    *uuid.UUID `json:"approvedById" gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt      *time.Time `json:"approvedAt" gorm:"column:approved_at"`
	IsActive        bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID     *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	Category *categorymodel.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Owner    *usermodel.User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Event) TableName() string {
	return "events"
}
