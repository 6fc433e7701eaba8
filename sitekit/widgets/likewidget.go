package widgets

import (
	"context"
	"sync"
	"time"

	"resume_portal_backend/sitekit/api"
)

// DefaultAnimationDelay is how long the heart animation plays after a toggle.
const DefaultAnimationDelay = 700 * time.Millisecond

// LikeWidgetConfig configures a LikeWidget.
type LikeWidgetConfig struct {
	// Client is the remote API backing the counter. Required.
	Client api.Client
	// AnimationDelay is how long toggles are suppressed after a click while
	// the animation plays. Zero means DefaultAnimationDelay.
	AnimationDelay time.Duration
}

// LikeWidget is the like button's controller. It applies toggles
// optimistically and rolls back to the exact pre-click state when the
// backend rejects the mutation.
type LikeWidget struct {
	mu sync.Mutex

	client         api.Client
	animationDelay time.Duration

	liked     bool
	count     int64
	known     bool
	animating bool
}

// NewLikeWidget creates a widget with an unknown count. Call Mount to load
// the baseline before toggles are accepted.
func NewLikeWidget(cfg LikeWidgetConfig) *LikeWidget {
	delay := cfg.AnimationDelay
	if delay == 0 {
		delay = DefaultAnimationDelay
	}
	return &LikeWidget{
		client:         cfg.Client,
		animationDelay: delay,
	}
}

// Mount loads the baseline count. FetchLikeCount degrades to zero on error,
// so Mount always leaves the count known.
func (w *LikeWidget) Mount(ctx context.Context) {
	count := w.client.FetchLikeCount(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.count = count
	w.known = true
}

// Liked reports whether the visitor has liked the page this session.
func (w *LikeWidget) Liked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.liked
}

// Count returns the displayed like count.
func (w *LikeWidget) Count() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Known reports whether the baseline count has loaded.
func (w *LikeWidget) Known() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.known
}

// Animating reports whether a toggle animation is in progress.
func (w *LikeWidget) Animating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.animating
}

// Toggle flips the like state. The display updates immediately and the
// mutation is sent afterwards; if the backend rejects it, the liked flag and
// count are restored to their pre-toggle values. Clicks while the animation
// plays or before the baseline is known are ignored.
func (w *LikeWidget) Toggle(ctx context.Context) {
	w.mu.Lock()

	if w.animating || !w.known {
		w.mu.Unlock()
		return
	}

	prevLiked := w.liked
	prevCount := w.count

	var action api.LikeAction
	if w.liked {
		w.liked = false
		if w.count > 0 {
			w.count--
		}
		action = api.ActionDecrement
	} else {
		w.liked = true
		w.count++
		action = api.ActionIncrement
	}

	w.animating = true
	time.AfterFunc(w.animationDelay, func() {
		w.mu.Lock()
		w.animating = false
		w.mu.Unlock()
	})
	w.mu.Unlock()

	_, err := w.client.MutateLikeCount(ctx, action)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.liked = prevLiked
		w.count = prevCount
	}
}
