package dto

import (
	"github.com/google/uuid"

	"suas_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	Username   string     `json:"username" validate:"required,min=3,max=50"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone" validate:"required,min=6,max=20"`
	Password   string     `json:"password" validate:"required,min=8"`
	Name       string     `json:"name" validate:"required,min=2,max=100"`
	Surname    string     `json:"surname" validate:"omitempty,max=100"`
	Photo      string     `json:"photo"`
	Gender     string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	UserRoleID *uuid.UUID `json:"userRoleId" validate:"omitempty"`
	IsAdmin    bool       `json:"isAdmin"`
	IsStaff    bool       `json:"isStaff"`
	IsOwner    bool       `json:"isOwner"`
}

// UpdateUserRequest carries only the mutable profile fields. Password changes
// go through the auth endpoints.
type UpdateUserRequest struct {
	Username   *string    `json:"username" validate:"omitempty,min=3,max=50"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	Phone      *string    `json:"phone" validate:"omitempty,min=6,max=20"`
	Name       *string    `json:"name" validate:"omitempty,min=2,max=100"`
	Surname    *string    `json:"surname" validate:"omitempty,max=100"`
	Photo      *string    `json:"photo"`
	Gender     *string    `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	UserRoleID *uuid.UUID `json:"userRoleId"`
	IsAdmin    *bool      `json:"isAdmin"`
	IsStaff    *bool      `json:"isStaff"`
	IsOwner    *bool      `json:"isOwner"`
}

// Updates flattens the set fields into a column/value map for GORM.
func (r UpdateUserRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Username != nil {
		u["username"] = *r.Username
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Surname != nil {
		u["surname"] = *r.Surname
	}
	if r.Photo != nil {
		u["photo"] = *r.Photo
	}
	if r.Gender != nil {
		u["gender"] = *r.Gender
	}
	if r.UserRoleID != nil {
		u["user_role_id"] = *r.UserRoleID
	}
	if r.IsAdmin != nil {
		u["is_admin"] = *r.IsAdmin
	}
	if r.IsStaff != nil {
		u["is_staff"] = *r.IsStaff
	}
	if r.IsOwner != nil {
		u["is_owner"] = *r.IsOwner
	}
	return u
}

func (r CreateUserRequest) ToModel() model.User {
	return model.User{
		Username:   r.Username,
		Email:      r.Email,
		Phone:      r.Phone,
		Name:       r.Name,
		Surname:    r.Surname,
		Photo:      r.Photo,
		Gender:     r.Gender,
		UserRoleID: r.UserRoleID,
		IsAdmin:    r.IsAdmin,
		IsStaff:    r.IsStaff,
		IsOwner:    r.IsOwner,
		IsActive:   true,
	}
}
