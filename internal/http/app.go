// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"resume_portal_backend/internal/events"
	"resume_portal_backend/platform/config"
	"resume_portal_backend/platform/httpkit"
	"resume_portal_backend/platform/logger"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// WriteLimiter rate limits state-changing public endpoints.
	WriteLimiter *httpkit.IPRateLimiter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
