package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is single-use and valid 15 minutes.
type PasswordResetToken struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string    `json:"token" gorm:"column:token;type:text;not null;uniqueIndex"`
	UserID    uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at;not null"`
	Used      bool      `json:"used" gorm:"column:used;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
