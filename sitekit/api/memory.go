package api

import (
	"context"
	"strings"
	"sync"
	"time"

	"resume_portal_backend/platform/apperr"
)

// duplicateMessage mirrors the backend's same-day conflict response.
const duplicateMessage = "You have already submitted your details today. I'll be in touch soon!"

// MemoryClient is an in-memory Client for tests and offline demos. It applies
// the same one-lead-per-email-per-day rule as the backend and keeps the like
// counter floored at zero.
type MemoryClient struct {
	mu    sync.Mutex
	leads map[string]string // lowercased email -> last submission day (2006-01-02)
	count int64
	now   func() time.Time

	// Error injection for exercising failure paths in tests.
	SubmitErr error
	MutateErr error
	FetchFail bool
}

// NewMemoryClient creates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		leads: make(map[string]string),
		now:   time.Now,
	}
}

// SetNow overrides the clock used for the per-day duplicate rule.
func (m *MemoryClient) SetNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// SetCount seeds the like counter.
func (m *MemoryClient) SetCount(count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = count
}

// Leads returns the number of stored leads.
func (m *MemoryClient) Leads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.leads)
}

// SubmitLead implements Client.
func (m *MemoryClient) SubmitLead(_ context.Context, lead Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SubmitErr != nil {
		return m.SubmitErr
	}

	email := strings.ToLower(strings.TrimSpace(lead.Email))
	day := m.now().UTC().Format("2006-01-02")
	if m.leads[email] == day {
		return apperr.Conflict(duplicateMessage)
	}

	m.leads[email] = day
	return nil
}

// FetchLikeCount implements Client.
func (m *MemoryClient) FetchLikeCount(context.Context) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FetchFail {
		return 0
	}
	return m.count
}

// MutateLikeCount implements Client.
func (m *MemoryClient) MutateLikeCount(_ context.Context, action LikeAction) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.MutateErr != nil {
		return 0, m.MutateErr
	}

	switch action {
	case ActionIncrement:
		m.count++
	case ActionDecrement:
		if m.count > 0 {
			m.count--
		}
	default:
		return 0, apperr.BadRequest("unknown action")
	}
	return m.count, nil
}
