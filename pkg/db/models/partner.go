package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/db/types"
	"github.com/badgerpadel/community-backend/pkg/enums"
)

// Partner is an approved business shown in the public directory.
type Partner struct {
	ID              uuid.UUID               `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string                  `gorm:"column:name;not null"`
	Type            enums.PartnerType       `gorm:"column:type;not null"`
	Location        *string                 `gorm:"column:location"`
	Phone           *string                 `gorm:"column:phone"`
	Website         *string                 `gorm:"column:website"`
	SocialMediaLink *string                 `gorm:"column:social_media_link"`
	MemberBenefit   *string                 `gorm:"column:member_benefit"`
	Email           *string                 `gorm:"column:email"`
	ContactPerson   *string                 `gorm:"column:contact_person"`
	ImageURL        *string                 `gorm:"column:image_url"`
	Image           *string                 `gorm:"column:image"`
	Discounts       types.DiscountList      `gorm:"column:discounts;type:jsonb"`
	Status          enums.ApplicationStatus `gorm:"column:status;not null;default:'approved'"`
	Active          bool                    `gorm:"column:active;not null;default:true"`
	ApplicationDate *time.Time              `gorm:"column:application_date"`
	ApprovalDate    *time.Time              `gorm:"column:approval_date"`
	CreatedAt       time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
