package partners

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/pkg/avatar"
	"github.com/badgerpadel/community-backend/pkg/db/models"
	dbtypes "github.com/badgerpadel/community-backend/pkg/db/types"
	"github.com/badgerpadel/community-backend/pkg/enums"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
)

const imageObjectPrefix = "partner-images"

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

type partnerRepository interface {
	List(ctx context.Context) ([]models.Partner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Partner, error)
	Create(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	Save(ctx context.Context, partner *models.Partner) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type objectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// Service exposes the partner directory operations.
type Service interface {
	List(ctx context.Context, filter Filter) ([]PartnerDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PartnerDTO, error)
	Create(ctx context.Context, input CreatePartnerInput) (*PartnerDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePartnerInput) (*PartnerDTO, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*PartnerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (*PartnerDTO, error)
}

type service struct {
	repo    partnerRepository
	storage objectStore
}

// NewService builds a partner service with the provided repository.
func NewService(repo partnerRepository, storage objectStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("partner repository required")
	}
	return &service{repo: repo, storage: storage}, nil
}

// List returns directory entries narrowed by the filter. Matching happens
// in memory over the full set; stored ordering is preserved.
func (s *service) List(ctx context.Context, filter Filter) ([]PartnerDTO, error) {
	partners, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list partners")
	}

	wantType := strings.ToLower(strings.TrimSpace(filter.Type))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := make([]models.Partner, 0, len(partners))
	for _, p := range partners {
		if filter.VisibleOnly && !p.Active {
			continue
		}
		if wantType != "" && wantType != "all" && string(p.Type) != wantType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		matched = append(matched, p)
	}

	return fromModels(matched), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PartnerDTO, error) {
	partner, err := s.findPartner(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(partner), nil
}

// Create registers a partner directly. Plain string discounts are assigned
// positional ids, and partners without artwork get a generated initials image.
func (s *service) Create(ctx context.Context, input CreatePartnerInput) (*PartnerDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid partner type")
	}

	now := time.Now().UTC()
	partner := &models.Partner{
		Name:            strings.TrimSpace(input.Name),
		Type:            input.Type,
		Location:        input.Location,
		Phone:           input.Phone,
		Website:         input.Website,
		SocialMediaLink: input.SocialMediaLink,
		MemberBenefit:   input.MemberBenefit,
		Email:           input.Email,
		ContactPerson:   input.ContactPerson,
		ImageURL:        input.ImageURL,
		Image:           input.ImageURL,
		Discounts:       dbtypes.DiscountsFromStrings(input.Discounts),
		Status:          enums.ApplicationStatusApproved,
		Active:          true,
		ApprovalDate:    &now,
	}
	// image_url stays whatever was supplied; image is the resolved
	// display URL and falls back to the initials avatar.
	if partner.Image == nil || strings.TrimSpace(*partner.Image) == "" {
		generated := avatar.InitialsURL(partner.Name)
		partner.Image = &generated
	}

	created, err := s.repo.Create(ctx, partner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create partner")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePartnerInput) (*PartnerDTO, error) {
	partner, err := s.findPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		partner.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid partner type")
		}
		partner.Type = *input.Type
	}
	if input.Location != nil {
		partner.Location = input.Location
	}
	if input.Phone != nil {
		partner.Phone = input.Phone
	}
	if input.Website != nil {
		partner.Website = input.Website
	}
	if input.SocialMediaLink != nil {
		partner.SocialMediaLink = input.SocialMediaLink
	}
	if input.MemberBenefit != nil {
		partner.MemberBenefit = input.MemberBenefit
	}
	if input.Email != nil {
		partner.Email = input.Email
	}
	if input.ContactPerson != nil {
		partner.ContactPerson = input.ContactPerson
	}
	if input.ImageURL != nil {
		partner.ImageURL = input.ImageURL
	}
	if input.Discounts != nil {
		partner.Discounts = input.Discounts.Normalize()
	}

	if err := s.repo.Save(ctx, partner); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update partner")
	}
	return FromModel(partner), nil
}

// SetActive flips directory visibility with a single-column update. The row
// is not reloaded first, so a concurrent delete surfaces as not found on read.
func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*PartnerDTO, error) {
	if err := s.repo.UpdateFields(ctx, id, map[string]any{"active": active}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle partner")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findPartner(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete partner")
	}
	return nil
}

// UploadImage stores partner artwork and records its public URL.
func (s *service) UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (*PartnerDTO, error) {
	if s.storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "object storage unavailable")
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image data is required")
	}

	partner, err := s.findPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("%s/%s-%d%s", imageObjectPrefix, slugify(partner.Name), time.Now().Unix(), normalizedExt(filename))
	publicURL, err := s.storage.Upload(ctx, objectPath, contentType, data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload partner image")
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"image_url": publicURL, "image": publicURL}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update partner image")
	}

	partner.ImageURL = &publicURL
	partner.Image = &publicURL
	return FromModel(partner), nil
}

func (s *service) findPartner(ctx context.Context, id uuid.UUID) (*models.Partner, error) {
	partner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "partner not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup partner")
	}
	return partner, nil
}

func slugify(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "partner"
	}
	return slug
}

func normalizedExt(filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	if ext == "" {
		return ".jpg"
	}
	return ext
}
