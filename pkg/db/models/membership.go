package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership is the per-user digital membership card record. The number is
// derived once from the user id and read back on every subsequent load; it
// is advisory and deliberately not unique (user_id carries the constraint).
type Membership struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex;not null"`
	MembershipNumber string    `gorm:"column:membership_number;not null"`
	ProfileImageURL  *string   `gorm:"column:profile_image_url"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
