package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/badgerpadel/community-backend/pkg/enums"
)

// PartnerApplication is a pending submission requesting partner status.
// Rows are never deleted; decided applications remain as the audit trail.
type PartnerApplication struct {
	ID                uuid.UUID               `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string                  `gorm:"column:name;not null"`
	Type              enums.PartnerType       `gorm:"column:type;not null"`
	Location          *string                 `gorm:"column:location"`
	Phone             *string                 `gorm:"column:phone"`
	Website           *string                 `gorm:"column:website"`
	SocialMediaLink   *string                 `gorm:"column:social_media_link"`
	MemberBenefit     *string                 `gorm:"column:member_benefit"`
	Email             string                  `gorm:"column:email;not null"`
	ContactPerson     string                  `gorm:"column:contact_person;not null"`
	ImageURL          *string                 `gorm:"column:image_url"`
	ProposedDiscounts pq.StringArray          `gorm:"column:proposed_discounts;type:text[]"`
	ApplicationDate   time.Time               `gorm:"column:application_date;not null"`
	Status            enums.ApplicationStatus `gorm:"column:status;not null;default:'pending'"`
	Message           *string                 `gorm:"column:message"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
