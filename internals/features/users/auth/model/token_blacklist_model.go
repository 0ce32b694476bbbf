package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist stores revoked JWTs. A token lands here on logout and stays
// until the cleanup scheduler removes the old ones.
type TokenBlacklist struct {
	ID        uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string    `json:"token" gorm:"column:token;type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklists"
}
