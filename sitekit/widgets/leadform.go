// Package widgets holds the interactive controllers of the resume site: the
// lead capture form and the like button. Both are plain state machines that
// any frontend (WASM, TUI, tests) can drive.
package widgets

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"resume_portal_backend/platform/apperr"
	"resume_portal_backend/sitekit/analytics"
	"resume_portal_backend/sitekit/api"
)

// Status is the lead form's submission state.
type Status string

const (
	// StatusIdle accepts input; nothing submitted yet.
	StatusIdle Status = "idle"
	// StatusLoading has a submission in flight; inputs are disabled.
	StatusLoading Status = "loading"
	// StatusSuccess confirmed the submission; the form closes itself shortly.
	StatusSuccess Status = "success"
	// StatusError shows a validation or submission failure; input is re-enabled.
	StatusError Status = "error"
)

// Validation and status messages shown in the form.
const (
	MsgNameRequired = "Please enter your name."
	MsgEmailInvalid = "Please enter a valid email address."
	MsgThankYou     = "Thank you! I'll be in touch soon."
	MsgFallback     = "Something went wrong. Please try again later."
)

// Analytics identifiers for the lead submission event.
const (
	AnalyticsEventName = "lead_submission"
	AnalyticsCategory  = "Resume Portfolio Interest"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Default timings for the form's cosmetic delays.
const (
	DefaultCloseDelay = 2 * time.Second
	DefaultResetDelay = 300 * time.Millisecond
)

// LeadFormConfig configures a LeadForm.
type LeadFormConfig struct {
	// Client is the remote API used to store leads. Required.
	Client api.Client
	// Analytics receives the lead submission event. Optional.
	Analytics analytics.Sink
	// OnClose is invoked whenever the form transitions to hidden. Optional.
	OnClose func()
	// CloseDelay is how long a successful form stays open before closing
	// itself. Zero means DefaultCloseDelay.
	CloseDelay time.Duration
	// ResetDelay is how long after hiding the state is cleared, leaving time
	// for a close animation. Zero means DefaultResetDelay.
	ResetDelay time.Duration
}

// LeadForm is the lead capture modal's controller. The zero value is not
// usable; create one with NewLeadForm.
type LeadForm struct {
	mu sync.Mutex

	client  api.Client
	sink    analytics.Sink
	onClose func()

	closeDelay time.Duration
	resetDelay time.Duration

	visible bool
	form    api.Lead
	status  Status
	message string

	closeTimer *time.Timer
	resetTimer *time.Timer
}

// NewLeadForm creates a hidden, idle lead form.
func NewLeadForm(cfg LeadFormConfig) *LeadForm {
	sink := cfg.Analytics
	if sink == nil {
		sink = analytics.Discard{}
	}
	closeDelay := cfg.CloseDelay
	if closeDelay == 0 {
		closeDelay = DefaultCloseDelay
	}
	resetDelay := cfg.ResetDelay
	if resetDelay == 0 {
		resetDelay = DefaultResetDelay
	}

	return &LeadForm{
		client:     cfg.Client,
		sink:       sink,
		onClose:    cfg.OnClose,
		closeDelay: closeDelay,
		resetDelay: resetDelay,
		status:     StatusIdle,
	}
}

// Show makes the form visible. Showing an already-visible form is a no-op.
func (l *LeadForm) Show() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.visible {
		return
	}
	if l.resetTimer != nil {
		l.resetTimer.Stop()
		l.resetTimer = nil
	}
	l.visible = true
}

// Close hides the form. State is cleared after the reset delay so a closing
// animation can finish first. The in-flight request, if any, is not aborted.
func (l *LeadForm) Close() {
	l.mu.Lock()
	if !l.visible {
		l.mu.Unlock()
		return
	}
	l.visible = false
	if l.closeTimer != nil {
		l.closeTimer.Stop()
		l.closeTimer = nil
	}
	l.resetTimer = time.AfterFunc(l.resetDelay, l.reset)
	onClose := l.onClose
	l.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func (l *LeadForm) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = api.Lead{}
	l.status = StatusIdle
	l.message = ""
}

// SetName updates the name field. Ignored while a submission is in flight or
// already confirmed, mirroring disabled inputs.
func (l *LeadForm) SetName(v string) { l.setField(func(f *api.Lead) { f.Name = v }) }

// SetEmail updates the email field under the same rules as SetName.
func (l *LeadForm) SetEmail(v string) { l.setField(func(f *api.Lead) { f.Email = v }) }

// SetPhone updates the optional phone field under the same rules as SetName.
func (l *LeadForm) SetPhone(v string) { l.setField(func(f *api.Lead) { f.Phone = v }) }

func (l *LeadForm) setField(apply func(*api.Lead)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status == StatusLoading || l.status == StatusSuccess {
		return
	}
	apply(&l.form)
}

// Visible reports whether the form is shown.
func (l *LeadForm) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

// Status returns the current submission status.
func (l *LeadForm) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Message returns the current status message.
func (l *LeadForm) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.message
}

// Values returns the current field values.
func (l *LeadForm) Values() api.Lead {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.form
}

// Submit validates the form and sends it to the backend. Validation failures
// never reach the network. While loading or after success the call is a
// no-op, so a submission can not be doubled from the same modal instance.
func (l *LeadForm) Submit(ctx context.Context) {
	l.mu.Lock()

	if l.status == StatusLoading || l.status == StatusSuccess {
		l.mu.Unlock()
		return
	}

	if strings.TrimSpace(l.form.Name) == "" {
		l.status = StatusError
		l.message = MsgNameRequired
		l.mu.Unlock()
		return
	}
	if !emailPattern.MatchString(l.form.Email) {
		l.status = StatusError
		l.message = MsgEmailInvalid
		l.mu.Unlock()
		return
	}

	l.status = StatusLoading
	l.message = ""
	lead := l.form
	l.mu.Unlock()

	err := l.client.SubmitLead(ctx, lead)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.status = StatusError
		if e, ok := err.(*apperr.Error); ok {
			// Duplicate messages come from the server verbatim; other typed
			// failures already carry their user-facing text.
			l.message = e.Message
		} else {
			l.message = MsgFallback
		}
		return
	}

	l.status = StatusSuccess
	l.message = MsgThankYou

	l.sink.Record(analytics.Event{
		Name:     AnalyticsEventName,
		Category: AnalyticsCategory,
		Email:    lead.Email,
	})

	l.closeTimer = time.AfterFunc(l.closeDelay, l.Close)
}
