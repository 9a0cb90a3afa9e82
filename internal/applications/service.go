package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/internal/partners"
	"github.com/badgerpadel/community-backend/pkg/avatar"
	"github.com/badgerpadel/community-backend/pkg/db/models"
	dbtypes "github.com/badgerpadel/community-backend/pkg/db/types"
	"github.com/badgerpadel/community-backend/pkg/enums"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
	"github.com/badgerpadel/community-backend/pkg/logger"
)

type applicationRepository interface {
	List(ctx context.Context) ([]models.PartnerApplication, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerApplication, error)
	Create(ctx context.Context, app *models.PartnerApplication) (*models.PartnerApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ApplicationStatus, message *string) error
}

type partnerCreator interface {
	Create(ctx context.Context, partner *models.Partner) (*models.Partner, error)
}

// Service exposes the application intake and review operations.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*ApplicationDTO, error)
	List(ctx context.Context) ([]ApplicationDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ApplicationDTO, error)
	Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*partners.PartnerDTO, error)
	Reject(ctx context.Context, id uuid.UUID, req RejectRequest) (*ApplicationDTO, error)
}

type service struct {
	repo     applicationRepository
	partners partnerCreator
	events   EventPublisher
	logg     *logger.Logger
}

// ServiceParams bundles the dependencies for the application service.
type ServiceParams struct {
	Repo     applicationRepository
	Partners partnerCreator
	Events   EventPublisher
	Logger   *logger.Logger
}

// NewService builds an application service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("application repository required")
	}
	if params.Partners == nil {
		return nil, fmt.Errorf("partner repository required")
	}
	return &service{
		repo:     params.Repo,
		partners: params.Partners,
		events:   params.Events,
		logg:     params.Logger,
	}, nil
}

// Submit validates and stores a new application in pending state.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*ApplicationDTO, error) {
	if !req.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid partner type")
	}

	proposed := splitDiscountLines(req.Discounts)
	if len(proposed) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one discount line is required")
	}

	app := &models.PartnerApplication{
		Name:              strings.TrimSpace(req.Name),
		Type:              req.Type,
		Location:          req.Location,
		Phone:             req.Phone,
		Website:           req.Website,
		SocialMediaLink:   req.SocialMediaLink,
		MemberBenefit:     req.MemberBenefit,
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		ContactPerson:     strings.TrimSpace(req.ContactPerson),
		ImageURL:          req.ImageURL,
		ProposedDiscounts: proposed,
		ApplicationDate:   time.Now().UTC(),
		Status:            enums.ApplicationStatusPending,
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create application")
	}

	publishBestEffort(ctx, s.events, s.logg, Event{
		Type:          EventSubmitted,
		ApplicationID: created.ID,
		Name:          created.Name,
		PartnerType:   created.Type,
		Status:        created.Status,
		OccurredAt:    time.Now().UTC(),
	})

	return FromModel(created), nil
}

func (s *service) List(ctx context.Context) ([]ApplicationDTO, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list applications")
	}
	return fromModels(apps), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ApplicationDTO, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(app), nil
}

// Approve marks the application approved, then inserts the directory entry.
// The two writes are deliberately separate and not transactional: when the
// partner insert fails the application stays approved and the caller gets an
// error naming the failed step, so an operator can create the partner by hand.
func (s *service) Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*partners.PartnerDTO, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, enums.ApplicationStatusApproved, req.Message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "approve application")
	}

	now := time.Now().UTC()
	applicationDate := app.ApplicationDate
	partner := &models.Partner{
		Name:            app.Name,
		Type:            app.Type,
		Location:        app.Location,
		Phone:           app.Phone,
		Website:         app.Website,
		SocialMediaLink: app.SocialMediaLink,
		MemberBenefit:   app.MemberBenefit,
		Email:           &app.Email,
		ContactPerson:   &app.ContactPerson,
		ImageURL:        app.ImageURL,
		Image:           app.ImageURL,
		Discounts:       dbtypes.DiscountsFromStrings(app.ProposedDiscounts),
		Status:          enums.ApplicationStatusApproved,
		Active:          true,
		ApplicationDate: &applicationDate,
		ApprovalDate:    &now,
	}
	// image_url stays whatever was submitted; image is the resolved
	// display URL and falls back to the initials avatar.
	if partner.Image == nil || strings.TrimSpace(*partner.Image) == "" {
		generated := avatar.InitialsURL(partner.Name)
		partner.Image = &generated
	}

	created, err := s.partners.Create(ctx, partner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create partner from application").
			WithDetails(map[string]any{"step": "create_partner"})
	}

	publishBestEffort(ctx, s.events, s.logg, Event{
		Type:          EventApproved,
		ApplicationID: app.ID,
		PartnerID:     &created.ID,
		Name:          created.Name,
		PartnerType:   created.Type,
		Status:        enums.ApplicationStatusApproved,
		OccurredAt:    now,
	})

	return partners.FromModel(created), nil
}

// Reject records the decision without checking the current status; an
// already-decided application can be re-decided by a later reviewer.
func (s *service) Reject(ctx context.Context, id uuid.UUID, req RejectRequest) (*ApplicationDTO, error) {
	app, err := s.findApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, enums.ApplicationStatusRejected, req.Message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reject application")
	}

	app.Status = enums.ApplicationStatusRejected
	if req.Message != nil {
		app.Message = req.Message
	}

	publishBestEffort(ctx, s.events, s.logg, Event{
		Type:          EventRejected,
		ApplicationID: app.ID,
		Name:          app.Name,
		PartnerType:   app.Type,
		Status:        enums.ApplicationStatusRejected,
		OccurredAt:    time.Now().UTC(),
	})

	return FromModel(app), nil
}

func (s *service) findApplication(ctx context.Context, id uuid.UUID) (*models.PartnerApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup application")
	}
	return app, nil
}

// splitDiscountLines breaks the free-text block into one offer per line,
// dropping blank lines after trimming.
func splitDiscountLines(block string) []string {
	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
