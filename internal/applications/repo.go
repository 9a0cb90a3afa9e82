package applications

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/pkg/db/models"
	"github.com/badgerpadel/community-backend/pkg/enums"
)

// Repository exposes application persistence operations. Rows are never
// deleted; decided applications stay behind as the audit trail.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repo to the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all applications, newest submissions first.
func (r *Repository) List(ctx context.Context) ([]models.PartnerApplication, error) {
	var apps []models.PartnerApplication
	err := r.db.WithContext(ctx).
		Order("application_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByID loads an application by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a new application and returns the persisted model.
func (r *Repository) Create(ctx context.Context, app *models.PartnerApplication) (*models.PartnerApplication, error) {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus writes the decision columns without reloading the row first.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ApplicationStatus, message *string) error {
	fields := map[string]any{"status": status}
	if message != nil {
		fields["message"] = message
	}
	return r.db.WithContext(ctx).
		Model(&models.PartnerApplication{}).
		Where("id = ?", id).
		Updates(fields).Error
}
