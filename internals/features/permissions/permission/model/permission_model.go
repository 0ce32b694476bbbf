package model

import (
	"time"

	"github.com/google/uuid"
)

// Permission is a single capability tag referenced by the role permission
// lists.
type Permission struct {
	ID              uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"referenceNumber" gorm:"column:reference_number"`
	Name            string     `json:"name" gorm:"column:name;not null;uniqueIndex" validate:"required,min=2,max=100"`
	Description     string     `json:"description" gorm:"column:description;type:text"`
	IsActive        bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID     *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Permission) TableName() string {
	return "permissions"
}
