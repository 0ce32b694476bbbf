package model

import (
	"time"

	"github.com/google/uuid"

	rolemodel "suas_backend/internals/features/users/role/model"
)

type User struct {
	ID              uuid.UUID  `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string     `json:"referenceNumber" gorm:"column:reference_number"`
	Username        string     `json:"username" gorm:"column:username;uniqueIndex" validate:"required,min=3,max=50"`
	Email           string     `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	Phone           string     `json:"phone" gorm:"column:phone;uniqueIndex" validate:"required,min=6,max=20"`
	Password        string     `json:"-" gorm:"column:password;not null"`
	Name            string     `json:"name" gorm:"column:name" validate:"required,min=2,max=100"`
	Surname         string     `json:"surname" gorm:"column:surname" validate:"omitempty,max=100"`
	Photo           string     `json:"photo" gorm:"column:photo"`
	Gender          string     `json:"gender" gorm:"column:gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	UserRoleID      *uuid.UUID `json:"userRoleId" gorm:"column:user_role_id;type:uuid"`
	IsAdmin         bool       `json:"isAdmin" gorm:"column:is_admin;default:false"`
	IsStaff         bool       `json:"isStaff" gorm:"column:is_staff;default:false"`
	IsOwner         bool       `json:"isOwner" gorm:"column:is_owner;default:false"`
	IsActive        bool       `json:"isActive" gorm:"column:is_active;default:true"`
	CreatedByID     *uuid.UUID `json:"createdById" gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID `json:"updatedById" gorm:"column:updated_by_id;type:uuid"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"column:updated_at"`

	UserRole *rolemodel.UserRole `json:"userRole,omitempty" gorm:"foreignKey:UserRoleID"`
}

func (User) TableName() string {
	return "users"
}
