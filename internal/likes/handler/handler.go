// Package handler provides HTTP handlers for the like counter.
package handler

import (
	"net/http"

	"resume_portal_backend/internal/likes/service"
	"resume_portal_backend/internal/likes/transport"
	"resume_portal_backend/platform/httpkit"
	"resume_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for likes.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new likes handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Get returns the current like count.
// GET /api/likes
func (h *Handler) Get(c *gin.Context) {
	count, err := h.svc.Count(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.LikeCountResponse{Count: count})
}

// Update applies an increment or decrement action.
// POST /api/likes
func (h *Handler) Update(c *gin.Context) {
	var req transport.UpdateLikesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	count, err := h.svc.Mutate(c.Request.Context(), req.Action)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.LikeCountResponse{Count: count})
}
