// Package leads provides the lead capture bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"resume_portal_backend/internal/events"
	apphttp "resume_portal_backend/internal/http"
	"resume_portal_backend/internal/leads/handler"
	"resume_portal_backend/internal/leads/repository"
	"resume_portal_backend/internal/leads/service"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "leads" }

// Service exposes the lead service for other modules.
func (m *Module) Service() *service.Service { return m.service }

// RegisterRoutes mounts the leads routes under /api/leads.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rg := ctx.API.Group("/leads")
	if ctx.WriteLimiter != nil {
		rg.Use(ctx.WriteLimiter.RateLimit())
	}
	m.handler.RegisterRoutes(rg)
}
