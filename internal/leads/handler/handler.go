// Package handler provides HTTP handlers for lead capture.
package handler

import (
	"net/http"

	"resume_portal_backend/internal/leads/service"
	"resume_portal_backend/internal/leads/transport"
	"resume_portal_backend/platform/apperr"
	"resume_portal_backend/platform/httpkit"
	"resume_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the public lead routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
}

// Create stores a visitor's contact details.
// POST /api/leads
//
// A same-day repeat submission responds 409 with a plain-text body; the site
// kit shows that text to the visitor verbatim.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Capture(c.Request.Context(), req)
	if apperr.Is(err, apperr.KindConflict) {
		c.String(http.StatusConflict, apperr.Message(err))
		return
	}
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}
