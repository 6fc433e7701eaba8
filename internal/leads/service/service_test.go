package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume_portal_backend/internal/events"
	"resume_portal_backend/internal/leads/repository"
	"resume_portal_backend/internal/leads/transport"
	"resume_portal_backend/platform/apperr"
	"resume_portal_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	submittedToday map[string]bool
	existsErr      error
	createErr      error
	created        []repository.CreateLeadParams
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	if f.createErr != nil {
		return repository.Lead{}, f.createErr
	}
	f.created = append(f.created, params)
	return repository.Lead{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeRepo) ExistsOnDay(_ context.Context, email string, _ time.Time) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.submittedToday[email], nil
}

func newTestService(repo repository.LeadsRepository) (*Service, events.Bus) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	return New(repo, bus, log), bus
}

func TestCaptureStoresTrimmedLead(t *testing.T) {
	repo := &fakeRepo{submittedToday: map[string]bool{}}
	svc, _ := newTestService(repo)

	resp, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:  "  Harsh Dhawle  ",
		Email: "Visitor@Example.COM",
		Phone: "",
	})
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}

	if resp.Name != "Harsh Dhawle" {
		t.Errorf("name not trimmed: %q", resp.Name)
	}
	if resp.Email != "visitor@example.com" {
		t.Errorf("email not lowercased: %q", resp.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestCaptureNormalizesPhone(t *testing.T) {
	repo := &fakeRepo{submittedToday: map[string]bool{}}
	svc, _ := newTestService(repo)

	resp, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
		Phone: "081070 33476",
	})
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}

	if resp.Phone != "+918107033476" {
		t.Errorf("phone not normalized to E.164: %q", resp.Phone)
	}
}

func TestCaptureRejectsSameDayDuplicate(t *testing.T) {
	repo := &fakeRepo{submittedToday: map[string]bool{"visitor@example.com": true}}
	svc, _ := newTestService(repo)

	_, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
	})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if apperr.Message(err) != DuplicateLeadMessage {
		t.Errorf("unexpected conflict message: %q", apperr.Message(err))
	}
	if len(repo.created) != 0 {
		t.Errorf("duplicate must not be inserted")
	}
}

func TestCapturePublishesLeadCaptured(t *testing.T) {
	repo := &fakeRepo{submittedToday: map[string]bool{}}
	svc, bus := newTestService(repo)

	captured := make(chan events.LeadCaptured, 1)
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.LeadCaptured); ok {
			captured <- e
		}
		return nil
	}))

	if _, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
	}); err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}

	select {
	case e := <-captured:
		if e.Email != "visitor@example.com" {
			t.Errorf("event email = %q", e.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("LeadCaptured event not published")
	}
}

func TestCaptureWrapsRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{existsErr: errors.New("connection refused")}
	svc, _ := newTestService(repo)

	_, err := svc.Capture(context.Background(), transport.CreateLeadRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
	})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
