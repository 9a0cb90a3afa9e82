package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/internal/applications"
	"github.com/badgerpadel/community-backend/internal/partners"
	"github.com/badgerpadel/community-backend/pkg/enums"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
	"github.com/badgerpadel/community-backend/pkg/types"
)

type stubApplicationService struct {
	submitted   *applications.SubmitRequest
	approvedID  uuid.UUID
	approveNote *string
	rejectedID  uuid.UUID
	rejectNote  *string
	submitErr   error
	approveErr  error
}

func (s *stubApplicationService) Submit(ctx context.Context, req applications.SubmitRequest) (*applications.ApplicationDTO, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submitted = &req
	return &applications.ApplicationDTO{
		ID:     uuid.New(),
		Name:   req.Name,
		Type:   req.Type,
		Status: enums.ApplicationStatusPending,
	}, nil
}

func (s *stubApplicationService) List(ctx context.Context) ([]applications.ApplicationDTO, error) {
	return []applications.ApplicationDTO{{ID: uuid.New(), Name: "Centro Padel Norte"}}, nil
}

func (s *stubApplicationService) Get(ctx context.Context, id uuid.UUID) (*applications.ApplicationDTO, error) {
	return &applications.ApplicationDTO{ID: id, Name: "Centro Padel Norte"}, nil
}

func (s *stubApplicationService) Approve(ctx context.Context, id uuid.UUID, req applications.ApproveRequest) (*partners.PartnerDTO, error) {
	if s.approveErr != nil {
		return nil, s.approveErr
	}
	s.approvedID = id
	s.approveNote = req.Message
	return &partners.PartnerDTO{ID: uuid.New(), Name: "Centro Padel Norte", Active: true}, nil
}

func (s *stubApplicationService) Reject(ctx context.Context, id uuid.UUID, req applications.RejectRequest) (*applications.ApplicationDTO, error) {
	s.rejectedID = id
	s.rejectNote = req.Message
	return &applications.ApplicationDTO{ID: id, Status: enums.ApplicationStatusRejected, Message: req.Message}, nil
}

func applicationsRouter(svc applications.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/partner-applications", ApplicationSubmit(svc, nil))
	r.Get("/api/admin/applications", AdminApplicationsList(svc, nil))
	r.Get("/api/admin/applications/{applicationID}", AdminApplicationGet(svc, nil))
	r.Post("/api/admin/applications/{applicationID}/approve", AdminApplicationApprove(svc, nil))
	r.Post("/api/admin/applications/{applicationID}/reject", AdminApplicationReject(svc, nil))
	return r
}

func TestApplicationSubmitCreated(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	payload := `{
		"name": "Padel Factory",
		"type": "shop",
		"email": "sales@padelfactory.example",
		"contact_person": "Jon Vega",
		"discounts": "10% off rackets\nFree grip"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/partner-applications", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submitted == nil || svc.submitted.Name != "Padel Factory" {
		t.Fatalf("expected submit to reach the service, got %+v", svc.submitted)
	}
}

func TestApplicationSubmitRejectsMissingFields(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/partner-applications", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.submitted != nil {
		t.Fatal("service should not be called on validation failure")
	}
}

func TestAdminApplicationApprove(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/"+id.String()+"/approve", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.approvedID != id {
		t.Fatalf("expected approve with %s, got %s", id, svc.approvedID)
	}
	if svc.approveNote != nil {
		t.Fatalf("expected no note without a body, got %v", svc.approveNote)
	}
}

func TestAdminApplicationApproveWithNote(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/"+id.String()+"/approve", strings.NewReader(`{"message":"great fit"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.approvedID != id {
		t.Fatalf("expected approve with %s, got %s", id, svc.approvedID)
	}
	if svc.approveNote == nil || *svc.approveNote != "great fit" {
		t.Fatalf("expected note forwarded, got %v", svc.approveNote)
	}
}

func TestAdminApplicationApproveSurfacesStepDetail(t *testing.T) {
	svc := &stubApplicationService{
		approveErr: pkgerrors.New(pkgerrors.CodeInternal, "create partner from application").
			WithDetails(map[string]any{"step": "create_partner"}),
	}
	router := applicationsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/"+uuid.NewString()+"/approve", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAdminApplicationRejectWithNote(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/"+id.String()+"/reject", strings.NewReader(`{"message":"duplicate submission"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.rejectedID != id {
		t.Fatalf("expected reject with %s, got %s", id, svc.rejectedID)
	}
	if svc.rejectNote == nil || *svc.rejectNote != "duplicate submission" {
		t.Fatalf("expected note forwarded, got %v", svc.rejectNote)
	}

	var body types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAdminApplicationRejectInvalidID(t *testing.T) {
	svc := &stubApplicationService{}
	router := applicationsRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/not-a-uuid/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
