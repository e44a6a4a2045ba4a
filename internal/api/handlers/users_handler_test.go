package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	"github.com/youssefhammani/file-rouge-final/internal/services"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

type mockUserService struct {
	updateFn func(ctx context.Context, userID uuid.UUID, in *services.ProfileUpdate) (*models.User, error)
	saveFn   func(ctx context.Context, userID, jobID uuid.UUID) error
	unsaveFn func(ctx context.Context, userID, jobID uuid.UUID) error
	listFn   func(ctx context.Context, userID uuid.UUID) ([]services.SavedJobView, error)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, in *services.ProfileUpdate) (*models.User, error) {
	return m.updateFn(ctx, userID, in)
}

func (m *mockUserService) SaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	return m.saveFn(ctx, userID, jobID)
}

func (m *mockUserService) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error {
	return m.unsaveFn(ctx, userID, jobID)
}

func (m *mockUserService) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]services.SavedJobView, error) {
	return m.listFn(ctx, userID)
}

func TestUpdateProfileHandler(t *testing.T) {
	uid := uuid.New()
	svc := &mockUserService{
		updateFn: func(_ context.Context, userID uuid.UUID, in *services.ProfileUpdate) (*models.User, error) {
			if userID != uid {
				t.Fatalf("expected the acting user id")
			}
			if in.Name == nil || *in.Name != "New Name" {
				t.Fatalf("name not threaded through: %+v", in)
			}
			if in.Email != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &models.User{ID: uid, Name: *in.Name}, nil
		},
	}
	h := NewUsersHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/users/profile", strings.NewReader(`{"name":"New Name"}`))
	req = asActor(req, models.Actor{ID: uid, Role: models.RoleCandidate})
	rr := httptest.NewRecorder()
	h.UpdateProfile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUpdateProfileRejectsProtectedFields(t *testing.T) {
	h := NewUsersHandler(&mockUserService{
		updateFn: func(_ context.Context, _ uuid.UUID, _ *services.ProfileUpdate) (*models.User, error) {
			t.Fatalf("service must not be reached")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{"password":"hunter22"}`,
		`{"role":"admin"}`,
		`{"name":"ok","role":"admin"}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/users/profile", strings.NewReader(body))
		req = asActor(req, models.Actor{ID: uuid.New(), Role: models.RoleCandidate})
		rr := httptest.NewRecorder()
		h.UpdateProfile(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rr.Code)
		}
		if resp := decodeEnvelope(t, rr); resp["message"] != "Cannot update these fields" {
			t.Fatalf("unexpected message %v", resp)
		}
	}
}

func TestSaveJobHandler(t *testing.T) {
	uid := uuid.New()
	jobID := uuid.New()
	saved := false
	svc := &mockUserService{
		saveFn: func(_ context.Context, userID, id uuid.UUID) error {
			if userID != uid || id != jobID {
				t.Fatalf("ids not threaded through")
			}
			if saved {
				return appErr.New(appErr.CodeConflict, "Job already saved")
			}
			saved = true
			return nil
		},
	}
	h := NewUsersHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/users/jobs/"+jobID.String()+"/save", nil)
	req = asActor(req, models.Actor{ID: uid, Role: models.RoleCandidate})
	rr := serveWithParam("/users/jobs/{jobId}/save", http.MethodPost, h.SaveJob, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeEnvelope(t, rr); body["message"] != "Job saved successfully" {
		t.Fatalf("unexpected message %v", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/users/jobs/"+jobID.String()+"/save", nil)
	req = asActor(req, models.Actor{ID: uid, Role: models.RoleCandidate})
	rr = serveWithParam("/users/jobs/{jobId}/save", http.MethodPost, h.SaveJob, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate save, got %d", rr.Code)
	}
}

func TestUnsaveJobHandler(t *testing.T) {
	svc := &mockUserService{
		unsaveFn: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	}
	h := NewUsersHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/users/jobs/"+uuid.NewString()+"/unsave", nil)
	req = asActor(req, models.Actor{ID: uuid.New(), Role: models.RoleCandidate})
	rr := serveWithParam("/users/jobs/{jobId}/unsave", http.MethodDelete, h.UnsaveJob, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeEnvelope(t, rr); body["message"] != "Job removed from saved jobs" {
		t.Fatalf("unexpected message %v", body)
	}
}

func TestSavedJobsHandler(t *testing.T) {
	uid := uuid.New()
	svc := &mockUserService{
		listFn: func(_ context.Context, userID uuid.UUID) ([]services.SavedJobView, error) {
			if userID != uid {
				t.Fatalf("expected the acting user id")
			}
			return []services.SavedJobView{{Title: "Go Engineer"}}, nil
		},
	}
	h := NewUsersHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/users/saved-jobs", nil)
	req = asActor(req, models.Actor{ID: uid, Role: models.RoleCandidate})
	rr := httptest.NewRecorder()
	h.SavedJobs(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := decodeEnvelope(t, rr); body["count"].(float64) != 1 {
		t.Fatalf("unexpected count %v", body)
	}
}
