// Package service provides business logic for the like counter.
package service

import (
	"context"

	"resume_portal_backend/internal/likes/repository"
	"resume_portal_backend/internal/likes/transport"
	"resume_portal_backend/platform/apperr"
	"resume_portal_backend/platform/logger"
)

// Service provides business logic for likes.
type Service struct {
	store repository.Store
	log   *logger.Logger
}

// New creates a new likes service.
func New(store repository.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Count returns the current like count.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.store.Get(ctx)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "could not read like count", err).WithOp("likes.Count")
	}
	return count, nil
}

// Mutate applies a named action to the counter and returns the authoritative
// new count.
func (s *Service) Mutate(ctx context.Context, action string) (int64, error) {
	var (
		count int64
		err   error
	)

	switch action {
	case transport.ActionIncrement:
		count, err = s.store.Increment(ctx)
	case transport.ActionDecrement:
		count, err = s.store.Decrement(ctx)
	default:
		return 0, apperr.BadRequest("unknown action")
	}

	if err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "could not update like count", err).WithOp("likes.Mutate")
	}

	s.log.Info("like count updated", "action", action, "count", count)
	return count, nil
}
