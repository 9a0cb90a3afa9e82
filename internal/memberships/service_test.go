package memberships

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/badgerpadel/community-backend/pkg/config"
	"github.com/badgerpadel/community-backend/pkg/db/models"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
)

type stubMembershipRepo struct {
	membership *models.Membership
	created    *models.Membership
	imageURL   string
}

func (s *stubMembershipRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Membership, error) {
	if s.membership == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.membership, nil
}

func (s *stubMembershipRepo) Create(ctx context.Context, membership *models.Membership) (*models.Membership, error) {
	membership.ID = uuid.New()
	s.created = membership
	s.membership = membership
	return membership, nil
}

func (s *stubMembershipRepo) UpdateProfileImage(ctx context.Context, userID uuid.UUID, imageURL string) error {
	s.imageURL = imageURL
	return nil
}

type stubUserRepo struct {
	user *models.User
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubObjectStore struct {
	lastPath        string
	lastContentType string
}

func (s *stubObjectStore) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	s.lastPath = objectPath
	s.lastContentType = contentType
	return "https://storage.googleapis.com/bp-community-media/" + objectPath, nil
}

func buildService(t *testing.T, repo *stubMembershipRepo, users *stubUserRepo, store *stubObjectStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:    repo,
		Users:   users,
		Storage: store,
		Config:  config.MembershipConfig{NumberPrefix: "BP"},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestGetCardCreatesMembershipOnFirstAccess(t *testing.T) {
	userID := uuid.New()
	repo := &stubMembershipRepo{}
	users := &stubUserRepo{user: &models.User{ID: userID, Email: "sam@example.com", DisplayName: "Sam Member"}}
	svc := buildService(t, repo, users, nil)

	card, err := svc.GetCard(context.Background(), userID)
	if err != nil {
		t.Fatalf("get card: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected membership to be created")
	}
	if card.MembershipNumber != DeriveNumber("BP", userID.String()) {
		t.Fatalf("expected derived number, got %s", card.MembershipNumber)
	}
	if card.MemberName != "Sam Member" {
		t.Fatalf("expected member name on card, got %q", card.MemberName)
	}
}

func TestGetCardReusesExistingNumber(t *testing.T) {
	userID := uuid.New()
	existing := &models.Membership{
		ID:               uuid.New(),
		UserID:           userID,
		MembershipNumber: "BP12345",
	}
	repo := &stubMembershipRepo{membership: existing}
	users := &stubUserRepo{user: &models.User{ID: userID, Email: "sam@example.com", DisplayName: "Sam Member"}}
	svc := buildService(t, repo, users, nil)

	card, err := svc.GetCard(context.Background(), userID)
	if err != nil {
		t.Fatalf("get card: %v", err)
	}
	if card.MembershipNumber != "BP12345" {
		t.Fatalf("expected stored number to be read back, got %s", card.MembershipNumber)
	}
	if repo.created != nil {
		t.Fatal("expected no new membership for existing user")
	}
}

func TestGetCardUnknownUser(t *testing.T) {
	repo := &stubMembershipRepo{}
	users := &stubUserRepo{err: gorm.ErrRecordNotFound}
	svc := buildService(t, repo, users, nil)

	_, err := svc.GetCard(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetProfileImageUploadsAndStoresURL(t *testing.T) {
	userID := uuid.New()
	repo := &stubMembershipRepo{membership: &models.Membership{
		ID:               uuid.New(),
		UserID:           userID,
		MembershipNumber: "BP54321",
	}}
	users := &stubUserRepo{user: &models.User{ID: userID, Email: "sam@example.com", DisplayName: "Sam Member"}}
	store := &stubObjectStore{}
	svc := buildService(t, repo, users, store)

	card, err := svc.SetProfileImage(context.Background(), userID, "me.PNG", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("set profile image: %v", err)
	}

	if !strings.HasPrefix(store.lastPath, "membership-photos/"+userID.String()+"-") {
		t.Fatalf("unexpected object path %s", store.lastPath)
	}
	if !strings.HasSuffix(store.lastPath, ".png") {
		t.Fatalf("expected lowercased extension, got %s", store.lastPath)
	}
	if repo.imageURL == "" {
		t.Fatal("expected image url to be persisted")
	}
	if card.ProfileImageURL == nil || *card.ProfileImageURL != repo.imageURL {
		t.Fatalf("expected card to carry the new image url")
	}
}

func TestSetProfileImageRequiresData(t *testing.T) {
	userID := uuid.New()
	repo := &stubMembershipRepo{}
	users := &stubUserRepo{user: &models.User{ID: userID}}
	svc := buildService(t, repo, users, &stubObjectStore{})

	_, err := svc.SetProfileImage(context.Background(), userID, "me.png", "image/png", nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
