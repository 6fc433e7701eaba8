package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateLeadRequest is the payload a visitor submits through the contact modal.
type CreateLeadRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// Response DTOs

// LeadResponse is the confirmation returned after a lead is stored.
type LeadResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
