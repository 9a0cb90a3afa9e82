package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/enums"
)

// User is an authenticated community account.
type User struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string           `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string           `gorm:"column:password_hash;not null"`
	DisplayName  string           `gorm:"column:display_name;not null"`
	Role         enums.MemberRole `gorm:"column:role;not null;default:'member'"`
	LastLoginAt  *time.Time       `gorm:"column:last_login_at"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
