package transport

// Action names accepted by the likes endpoint. The frontend sends a named
// action rather than a raw delta so the backend stays authoritative for the
// stored value.
const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// UpdateLikesRequest is the payload for mutating the like counter.
type UpdateLikesRequest struct {
	Action string `json:"action" validate:"required,oneof=increment decrement"`
}

// LikeCountResponse carries the authoritative like count.
type LikeCountResponse struct {
	Count int64 `json:"count"`
}
