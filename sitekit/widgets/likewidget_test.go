package widgets

import (
	"context"
	"testing"
	"time"

	"resume_portal_backend/platform/apperr"
)

func TestLikeWidgetMountLoadsBaseline(t *testing.T) {
	client := &stubClient{fetchCount: 5, count: 5}
	w := NewLikeWidget(LikeWidgetConfig{Client: client})

	if w.Known() {
		t.Fatal("Known() = true before Mount")
	}
	w.Mount(context.Background())
	if !w.Known() {
		t.Fatal("Known() = false after Mount")
	}
	if got := w.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestLikeWidgetIgnoresToggleBeforeMount(t *testing.T) {
	client := &stubClient{}
	w := NewLikeWidget(LikeWidgetConfig{Client: client})

	w.Toggle(context.Background())

	if got := client.mutated(); got != 0 {
		t.Errorf("mutate calls = %d, want 0", got)
	}
	if w.Liked() {
		t.Error("Liked() = true, want false")
	}
}

func TestLikeWidgetOptimisticIncrement(t *testing.T) {
	client := &stubClient{fetchCount: 5, count: 5}
	w := NewLikeWidget(LikeWidgetConfig{Client: client, AnimationDelay: 10 * time.Millisecond})
	w.Mount(context.Background())

	w.Toggle(context.Background())

	if !w.Liked() {
		t.Error("Liked() = false, want true")
	}
	if got := w.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := client.mutated(); got != 1 {
		t.Errorf("mutate calls = %d, want 1", got)
	}
}

func TestLikeWidgetRollbackOnFailure(t *testing.T) {
	client := &stubClient{fetchCount: 5, count: 5, mutateErr: apperr.Internal("down")}
	w := NewLikeWidget(LikeWidgetConfig{Client: client, AnimationDelay: 10 * time.Millisecond})
	w.Mount(context.Background())

	w.Toggle(context.Background())

	if w.Liked() {
		t.Error("Liked() = true after rollback, want false")
	}
	if got := w.Count(); got != 5 {
		t.Errorf("Count() = %d after rollback, want 5", got)
	}
}

func TestLikeWidgetUnlikeAndFloor(t *testing.T) {
	client := &stubClient{fetchCount: 1, count: 1}
	w := NewLikeWidget(LikeWidgetConfig{Client: client, AnimationDelay: 5 * time.Millisecond})
	w.Mount(context.Background())

	w.Toggle(context.Background()) // like: 1 -> 2
	waitFor(t, func() bool { return !w.Animating() })
	w.Toggle(context.Background()) // unlike: 2 -> 1
	waitFor(t, func() bool { return !w.Animating() })

	if w.Liked() {
		t.Error("Liked() = true after unlike, want false")
	}
	if got := w.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}

	// The display never goes below zero, even from a zero baseline.
	client.mu.Lock()
	client.count = 0
	client.mu.Unlock()
	w2 := NewLikeWidget(LikeWidgetConfig{Client: client, AnimationDelay: 5 * time.Millisecond})
	w2.Mount(context.Background())
	w2.Toggle(context.Background())
	waitFor(t, func() bool { return !w2.Animating() })
	w2.mu.Lock()
	w2.liked = true
	w2.count = 0
	w2.mu.Unlock()
	w2.Toggle(context.Background())
	if got := w2.Count(); got != 0 {
		t.Errorf("Count() = %d after decrement at zero, want 0", got)
	}
}

func TestLikeWidgetIgnoresClicksWhileAnimating(t *testing.T) {
	client := &stubClient{fetchCount: 0}
	w := NewLikeWidget(LikeWidgetConfig{Client: client, AnimationDelay: time.Hour})
	w.Mount(context.Background())

	w.Toggle(context.Background())
	w.Toggle(context.Background())
	w.Toggle(context.Background())

	if got := client.mutated(); got != 1 {
		t.Errorf("mutate calls = %d, want 1", got)
	}
	if got := w.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}
