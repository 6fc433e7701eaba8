package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume_portal_backend/internal/events"
	"resume_portal_backend/internal/leads/repository"
	"resume_portal_backend/internal/leads/service"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubRepo struct {
	duplicate bool
}

func (s *stubRepo) Create(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	return repository.Lead{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubRepo) ExistsOnDay(context.Context, string, time.Time) (bool, error) {
	return s.duplicate, nil
}

func newTestRouter(repo repository.LeadsRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("development")
	svc := service.New(repo, events.NewInMemoryBus(log), log)
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/leads"))
	return engine
}

func postLead(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateLeadSuccess(t *testing.T) {
	engine := newTestRouter(&stubRepo{})

	rec := postLead(t, engine, `{"name":"Visitor","email":"visitor@example.com","phone":"+918107033476"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"visitor@example.com"`) {
		t.Errorf("response missing stored email: %s", rec.Body.String())
	}
}

func TestCreateLeadDuplicateIsPlainText(t *testing.T) {
	engine := newTestRouter(&stubRepo{duplicate: true})

	rec := postLead(t, engine, `{"name":"Visitor","email":"visitor@example.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	// The site kit surfaces the body verbatim, so it must be plain text.
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	if rec.Body.String() != service.DuplicateLeadMessage {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCreateLeadValidation(t *testing.T) {
	engine := newTestRouter(&stubRepo{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"visitor@example.com"}`},
		{"missing email", `{"name":"Visitor"}`},
		{"bad email", `{"name":"Visitor","email":"not-an-email"}`},
		{"malformed json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postLead(t, engine, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
