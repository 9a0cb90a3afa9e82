package applications

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/db/models"
	"github.com/badgerpadel/community-backend/pkg/enums"
)

// SubmitRequest is the public application form payload. Proposed discounts
// arrive as one free-text block, one offer per line.
type SubmitRequest struct {
	Name            string            `json:"name" validate:"required,min=2"`
	Type            enums.PartnerType `json:"type" validate:"required"`
	Location        *string           `json:"location,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	Website         *string           `json:"website,omitempty"`
	SocialMediaLink *string           `json:"social_media_link,omitempty"`
	MemberBenefit   *string           `json:"member_benefit,omitempty"`
	Email           string            `json:"email" validate:"required,email"`
	ContactPerson   string            `json:"contact_person" validate:"required,min=2"`
	ImageURL        *string           `json:"image_url,omitempty"`
	Discounts       string            `json:"discounts" validate:"required,min=10"`
}

// RejectRequest carries the optional note recorded with a rejection.
type RejectRequest struct {
	Message *string `json:"message,omitempty"`
}

// ApproveRequest carries the optional note recorded with an approval.
type ApproveRequest struct {
	Message *string `json:"message,omitempty"`
}

// ApplicationDTO is the admin-facing view of a submitted application.
type ApplicationDTO struct {
	ID                uuid.UUID               `json:"id"`
	Name              string                  `json:"name"`
	Type              enums.PartnerType       `json:"type"`
	Location          *string                 `json:"location,omitempty"`
	Phone             *string                 `json:"phone,omitempty"`
	Website           *string                 `json:"website,omitempty"`
	SocialMediaLink   *string                 `json:"social_media_link,omitempty"`
	MemberBenefit     *string                 `json:"member_benefit,omitempty"`
	Email             string                  `json:"email"`
	ContactPerson     string                  `json:"contact_person"`
	ImageURL          *string                 `json:"image_url,omitempty"`
	ProposedDiscounts []string                `json:"proposed_discounts"`
	ApplicationDate   time.Time               `json:"application_date"`
	Status            enums.ApplicationStatus `json:"status"`
	Message           *string                 `json:"message,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// FromModel maps the persisted application into a DTO.
func FromModel(m *models.PartnerApplication) *ApplicationDTO {
	if m == nil {
		return nil
	}

	return &ApplicationDTO{
		ID:                m.ID,
		Name:              m.Name,
		Type:              m.Type,
		Location:          m.Location,
		Phone:             m.Phone,
		Website:           m.Website,
		SocialMediaLink:   m.SocialMediaLink,
		MemberBenefit:     m.MemberBenefit,
		Email:             m.Email,
		ContactPerson:     m.ContactPerson,
		ImageURL:          m.ImageURL,
		ProposedDiscounts: append([]string(nil), m.ProposedDiscounts...),
		ApplicationDate:   m.ApplicationDate,
		Status:            m.Status,
		Message:           m.Message,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromModels(items []models.PartnerApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
