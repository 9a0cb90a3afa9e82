package partners

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/db/models"
	dbtypes "github.com/badgerpadel/community-backend/pkg/db/types"
	"github.com/badgerpadel/community-backend/pkg/enums"
)

// PartnerDTO is the directory entry shape returned by the API.
type PartnerDTO struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Type            enums.PartnerType       `json:"type"`
	Location        *string                 `json:"location,omitempty"`
	Phone           *string                 `json:"phone,omitempty"`
	Website         *string                 `json:"website,omitempty"`
	SocialMediaLink *string                 `json:"social_media_link,omitempty"`
	MemberBenefit   *string                 `json:"member_benefit,omitempty"`
	Email           *string                 `json:"email,omitempty"`
	ContactPerson   *string                 `json:"contact_person,omitempty"`
	ImageURL        *string                 `json:"image_url,omitempty"`
	Image           *string                 `json:"image,omitempty"`
	Discounts       dbtypes.DiscountList    `json:"discounts"`
	Status          enums.ApplicationStatus `json:"status"`
	Active          bool                    `json:"active"`
	ApplicationDate *time.Time              `json:"application_date,omitempty"`
	ApprovalDate    *time.Time              `json:"approval_date,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// CreatePartnerInput captures the fields an admin supplies when adding a
// partner directly, without going through an application.
type CreatePartnerInput struct {
	Name            string            `json:"name" validate:"required,min=2"`
	Type            enums.PartnerType `json:"type" validate:"required"`
	Location        *string           `json:"location,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	Website         *string           `json:"website,omitempty"`
	SocialMediaLink *string           `json:"social_media_link,omitempty"`
	MemberBenefit   *string           `json:"member_benefit,omitempty"`
	Email           *string           `json:"email,omitempty" validate:"omitempty,email"`
	ContactPerson   *string           `json:"contact_person,omitempty"`
	ImageURL        *string           `json:"image_url,omitempty"`
	Discounts       []string          `json:"discounts,omitempty"`
}

// UpdatePartnerInput captures the mutable partner fields. Nil pointers leave
// the stored value untouched.
type UpdatePartnerInput struct {
	Name            *string               `json:"name,omitempty" validate:"omitempty,min=2"`
	Type            *enums.PartnerType    `json:"type,omitempty"`
	Location        *string               `json:"location,omitempty"`
	Phone           *string               `json:"phone,omitempty"`
	Website         *string               `json:"website,omitempty"`
	SocialMediaLink *string               `json:"social_media_link,omitempty"`
	MemberBenefit   *string               `json:"member_benefit,omitempty"`
	Email           *string               `json:"email,omitempty" validate:"omitempty,email"`
	ContactPerson   *string               `json:"contact_person,omitempty"`
	ImageURL        *string               `json:"image_url,omitempty"`
	Discounts       *dbtypes.DiscountList `json:"discounts,omitempty"`
}

// Filter narrows the directory listing. Zero values match everything.
// VisibleOnly hides deactivated partners; the public directory sets it,
// the admin listing does not.
type Filter struct {
	Type        string
	Search      string
	VisibleOnly bool
}

// FromModel maps the persisted partner into a DTO.
func FromModel(m *models.Partner) *PartnerDTO {
	if m == nil {
		return nil
	}

	return &PartnerDTO{
		ID:              m.ID,
		Name:            m.Name,
		Type:            m.Type,
		Location:        m.Location,
		Phone:           m.Phone,
		Website:         m.Website,
		SocialMediaLink: m.SocialMediaLink,
		MemberBenefit:   m.MemberBenefit,
		Email:           m.Email,
		ContactPerson:   m.ContactPerson,
		ImageURL:        m.ImageURL,
		Image:           m.Image,
		Discounts:       append(dbtypes.DiscountList(nil), m.Discounts...),
		Status:          m.Status,
		Active:          m.Active,
		ApplicationDate: m.ApplicationDate,
		ApprovalDate:    m.ApprovalDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromModels(items []models.Partner) []PartnerDTO {
	out := make([]PartnerDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
