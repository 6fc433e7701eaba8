// Package router builds the Gin engine from the assembled application.
package router

import (
	"net/http"
	"strings"
	"time"

	apphttp "resume_portal_backend/internal/http"
	"resume_portal_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New constructs the Gin engine, wires shared middleware, and lets every
// registered module mount its routes under /api.
func New(app *apphttp.App) *gin.Engine {
	if !strings.EqualFold(app.Config.GetEnv(), "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	engine.GET("/api/health", func(c *gin.Context) {
		status := http.StatusOK
		payload := gin.H{"status": "ok"}
		if app.Health != nil {
			if err := app.Health.Ping(c.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				payload = gin.H{"status": "degraded"}
			}
		}
		c.JSON(status, payload)
	})

	ctx := &apphttp.RouterContext{
		Engine:       engine,
		API:          engine.Group("/api"),
		WriteLimiter: app.WriteLimiter,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if app.Config.GetCORSAllowAll() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = app.Config.GetCORSOrigins()
	}

	return cors.New(cfg)
}
