// Package sitekit assembles the resume site's client-side pieces: the lead
// capture form, the like button, content, analytics and the AI summarizer.
package sitekit

import (
	"context"
	"sync"
	"time"

	"resume_portal_backend/sitekit/analytics"
	"resume_portal_backend/sitekit/api"
	"resume_portal_backend/sitekit/content"
	"resume_portal_backend/sitekit/summary"
	"resume_portal_backend/sitekit/widgets"
)

// DefaultRevealDelay is how long after mount the lead form pops up on its own.
const DefaultRevealDelay = 15 * time.Second

// Config configures a Shell.
type Config struct {
	// Client is the remote API. Required.
	Client api.Client
	// Analytics receives widget events. Optional.
	Analytics analytics.Sink
	// Summarizer powers the AI summary feature. Optional; without one,
	// Summarize reports the fallback message.
	Summarizer summary.Summarizer
	// Content is the resume rendered by the site. Nil means the built-in
	// default.
	Content *content.Resume

	// RevealDelay is how long after Mount the lead form opens unprompted.
	// Zero means DefaultRevealDelay.
	RevealDelay time.Duration
	// CloseDelay and ResetDelay are passed through to the lead form.
	CloseDelay time.Duration
	ResetDelay time.Duration
	// AnimationDelay is passed through to the like widget.
	AnimationDelay time.Duration
}

// Shell is the site's top-level controller. It owns the widgets and the
// one-shot timer that reveals the lead form.
type Shell struct {
	mu sync.Mutex

	content    *content.Resume
	summarizer summary.Summarizer

	leadForm *widgets.LeadForm
	like     *widgets.LikeWidget

	revealDelay time.Duration
	revealTimer *time.Timer
	revealed    bool
	mounted     bool

	summarizing bool
	summaryText string
	summaryErr  bool
}

// New creates an unmounted Shell.
func New(cfg Config) *Shell {
	res := cfg.Content
	if res == nil {
		def := content.Default()
		res = &def
	}
	revealDelay := cfg.RevealDelay
	if revealDelay == 0 {
		revealDelay = DefaultRevealDelay
	}

	s := &Shell{
		content:     res,
		summarizer:  cfg.Summarizer,
		revealDelay: revealDelay,
	}
	s.leadForm = widgets.NewLeadForm(widgets.LeadFormConfig{
		Client:     cfg.Client,
		Analytics:  cfg.Analytics,
		CloseDelay: cfg.CloseDelay,
		ResetDelay: cfg.ResetDelay,
	})
	s.like = widgets.NewLikeWidget(widgets.LikeWidgetConfig{
		Client:         cfg.Client,
		AnimationDelay: cfg.AnimationDelay,
	})
	return s
}

// LeadForm returns the lead capture form controller.
func (s *Shell) LeadForm() *widgets.LeadForm { return s.leadForm }

// Like returns the like button controller.
func (s *Shell) Like() *widgets.LikeWidget { return s.like }

// Content returns the resume rendered by the site.
func (s *Shell) Content() *content.Resume { return s.content }

// Mount loads the like baseline and arms the one-shot reveal timer. The lead
// form opens by itself once, after the reveal delay; closing it or a second
// Mount never re-arms the timer.
func (s *Shell) Mount(ctx context.Context) {
	s.like.Mount(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted || s.revealed {
		return
	}
	s.mounted = true
	s.revealTimer = time.AfterFunc(s.revealDelay, func() {
		s.mu.Lock()
		s.revealed = true
		s.revealTimer = nil
		s.mu.Unlock()
		s.leadForm.Show()
	})
}

// Unmount cancels the pending reveal, if any. Widget state is kept.
func (s *Shell) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mounted = false
	if s.revealTimer != nil {
		s.revealTimer.Stop()
		s.revealTimer = nil
	}
}

// Summarize generates an AI summary of the resume's work experience and
// stores it for display. A failure stores the fallback message instead of an
// error; concurrent calls while one is running are ignored.
func (s *Shell) Summarize(ctx context.Context) {
	s.mu.Lock()
	if s.summarizing {
		s.mu.Unlock()
		return
	}
	s.summarizing = true
	summarizer := s.summarizer
	experience := s.content.ExperienceText()
	s.mu.Unlock()

	var (
		text string
		err  error
	)
	if summarizer != nil {
		text, err = summarizer.Summarize(ctx, experience)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.summarizing = false
	if summarizer == nil || err != nil {
		s.summaryText = summary.FallbackMessage
		s.summaryErr = true
		return
	}
	s.summaryText = text
	s.summaryErr = false
}

// Summarizing reports whether a summary request is in flight.
func (s *Shell) Summarizing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summarizing
}

// Summary returns the stored summary text and whether it is the failure
// fallback rather than generated content.
func (s *Shell) Summary() (text string, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryText, s.summaryErr
}
