// Package api provides the remote client the site widgets talk to. The
// widgets depend only on the Client interface; an HTTP implementation talks
// to the backend and an in-memory one serves tests and offline demos.
package api

import "context"

// Lead is a visitor's submitted contact information.
type Lead struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LikeAction is a named mutation of the like counter. The backend stays
// authoritative for the stored value, so the client never sends a raw delta.
type LikeAction string

const (
	// ActionIncrement adds one like.
	ActionIncrement LikeAction = "increment"
	// ActionDecrement removes one like.
	ActionDecrement LikeAction = "decrement"
)

// User-facing messages for remote failures. Widgets display these verbatim.
const (
	// UnexpectedErrorMessage is shown when lead submission fails for any
	// reason other than a duplicate.
	UnexpectedErrorMessage = "An unexpected error occurred. Please try again."
	// UpdateFailedMessage is the error message for a failed like mutation.
	UpdateFailedMessage = "Failed to update likes."
)

// Client is the remote API the widgets depend on.
type Client interface {
	// SubmitLead stores the visitor's contact details. A same-day repeat
	// submission fails with a conflict error carrying the server's message
	// verbatim; any other failure carries a generic message.
	SubmitLead(ctx context.Context, lead Lead) error

	// FetchLikeCount reads the current like count. It never fails: on any
	// transport or server error it degrades to zero so the widget is not
	// blocked waiting for a baseline.
	FetchLikeCount(ctx context.Context) int64

	// MutateLikeCount applies a named action and returns the authoritative
	// new count. No automatic retry on failure.
	MutateLikeCount(ctx context.Context, action LikeAction) (int64, error)
}
