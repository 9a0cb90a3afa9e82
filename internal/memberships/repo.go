package memberships

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/pkg/db/models"
)

// Repository exposes membership persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repo to the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUserID returns the membership record for the user, if any.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// Create persists a new membership record.
func (r *Repository) Create(ctx context.Context, membership *models.Membership) (*models.Membership, error) {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}

// UpdateProfileImage replaces the stored card photo URL.
func (r *Repository) UpdateProfileImage(ctx context.Context, userID uuid.UUID, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ?", userID).
		UpdateColumn("profile_image_url", imageURL).Error
}
