package memberships

import (
	"time"

	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/db/models"
)

// CardDTO is the digital membership card returned to members.
type CardDTO struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	MembershipNumber string    `json:"membership_number"`
	MemberName       string    `json:"member_name"`
	Email            string    `json:"email"`
	ProfileImageURL  *string   `json:"profile_image_url,omitempty"`
	MemberSince      time.Time `json:"member_since"`
}

func cardFromModel(m *models.Membership, user *models.User) *CardDTO {
	if m == nil {
		return nil
	}

	card := &CardDTO{
		ID:               m.ID,
		UserID:           m.UserID,
		MembershipNumber: m.MembershipNumber,
		ProfileImageURL:  m.ProfileImageURL,
		MemberSince:      m.CreatedAt,
	}
	if user != nil {
		card.MemberName = user.DisplayName
		card.Email = user.Email
	}
	return card
}
