// Package likes provides the like counter bounded context module.
package likes

import (
	apphttp "resume_portal_backend/internal/http"
	"resume_portal_backend/internal/likes/handler"
	"resume_portal_backend/internal/likes/repository"
	"resume_portal_backend/internal/likes/service"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the likes bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	store   *repository.RedisStore
}

// NewModule creates and initializes the likes module with all its dependencies.
func NewModule(client *redis.Client, val *validator.Validator, log *logger.Logger) *Module {
	store := repository.NewRedisStore(client)
	svc := service.New(store, log)
	h := handler.New(svc, val)

	return &Module{handler: h, store: store}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "likes" }

// Store exposes the counter store, e.g. for readiness checks.
func (m *Module) Store() *repository.RedisStore { return m.store }

// RegisterRoutes mounts the likes routes under /api/likes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rg := ctx.API.Group("/likes")
	rg.GET("", m.handler.Get)

	write := rg
	if ctx.WriteLimiter != nil {
		write = rg.Group("")
		write.Use(ctx.WriteLimiter.RateLimit())
	}
	write.POST("", m.handler.Update)
}
