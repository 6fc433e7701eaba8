package resume

import (
	apphttp "resume_portal_backend/internal/http"
	"resume_portal_backend/platform/httpkit"
	"resume_portal_backend/sitekit/content"

	"github.com/gin-gonic/gin"
)

// Module serves the static resume content. It implements http.Module.
type Module struct {
	res content.Resume
}

// NewModule creates the resume module with the given content.
func NewModule(res content.Resume) *Module {
	return &Module{res: res}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "resume" }

// Content returns the content served by this module.
func (m *Module) Content() content.Resume { return m.res }

// RegisterRoutes mounts the resume routes under /api/resume.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/resume", m.get)
}

// get returns the full resume content.
// GET /api/resume
func (m *Module) get(c *gin.Context) {
	httpkit.OK(c, m.res)
}
