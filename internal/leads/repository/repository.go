// Package repository provides Postgres persistence for leads.
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the pgx-backed implementation of LeadsRepository.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create stores a new lead and returns it with ID and CreatedAt populated.
func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	lead := Lead{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		params.Name, params.Email, params.Phone,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return Lead{}, fmt.Errorf("insert lead: %w", err)
	}

	return lead, nil
}

// ExistsOnDay reports whether the email already submitted a lead during the
// UTC calendar day containing the given instant.
func (r *Repository) ExistsOnDay(ctx context.Context, email string, at time.Time) (bool, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leads
			WHERE lower(email) = $1
			  AND created_at >= $2
			  AND created_at < $3
		)`,
		strings.ToLower(email), dayStart, dayEnd,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check duplicate lead: %w", err)
	}

	return exists, nil
}
