package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminSession stores the sha256 hash of an issued refresh token. Tokens are
// single use: refresh revokes the presented session and issues a new one.
type AdminSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
