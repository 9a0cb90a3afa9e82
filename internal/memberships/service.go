package memberships

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/pkg/config"
	"github.com/badgerpadel/community-backend/pkg/db/models"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
)

const photoObjectPrefix = "membership-photos"

type membershipRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Membership, error)
	Create(ctx context.Context, membership *models.Membership) (*models.Membership, error)
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, imageURL string) error
}

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type objectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// Service exposes the membership card operations.
type Service interface {
	GetCard(ctx context.Context, userID uuid.UUID) (*CardDTO, error)
	SetProfileImage(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*CardDTO, error)
}

type service struct {
	repo    membershipRepository
	users   userRepository
	storage objectStore
	cfg     config.MembershipConfig
}

// ServiceParams bundles the dependencies for the membership service.
type ServiceParams struct {
	Repo    membershipRepository
	Users   userRepository
	Storage objectStore
	Config  config.MembershipConfig
}

// NewService builds a membership service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("membership repository required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{
		repo:    params.Repo,
		users:   params.Users,
		storage: params.Storage,
		cfg:     params.Config,
	}, nil
}

// GetCard returns the user's membership card, creating the record on first access.
// The card number is derived once from the user id and read back afterwards.
func (s *service) GetCard(ctx context.Context, userID uuid.UUID) (*CardDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	membership, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup membership")
		}
		membership, err = s.repo.Create(ctx, &models.Membership{
			UserID:           userID,
			MembershipNumber: DeriveNumber(s.cfg.NumberPrefix, userID.String()),
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create membership")
		}
	}

	return cardFromModel(membership, user), nil
}

// SetProfileImage stores the uploaded card photo and records its public URL.
func (s *service) SetProfileImage(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*CardDTO, error) {
	if s.storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "object storage unavailable")
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image data is required")
	}

	card, err := s.GetCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("%s/%s-%d%s", photoObjectPrefix, userID, time.Now().Unix(), normalizedExt(filename))
	publicURL, err := s.storage.Upload(ctx, objectPath, contentType, data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload profile image")
	}

	if err := s.repo.UpdateProfileImage(ctx, userID, publicURL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile image")
	}

	card.ProfileImageURL = &publicURL
	return card, nil
}

func normalizedExt(filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	if ext == "" {
		return ".jpg"
	}
	return ext
}
