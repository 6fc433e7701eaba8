package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestGetMissingKeyReadsZero(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestIncrementAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx)
		if err != nil {
			t.Fatalf("Increment returned error: %v", err)
		}
		if got != want {
			t.Errorf("Increment = %d, want %d", got, want)
		}
	}

	count, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Increment(ctx); err != nil {
		t.Fatalf("Increment returned error: %v", err)
	}

	got, err := store.Decrement(ctx)
	if err != nil {
		t.Fatalf("Decrement returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("Decrement = %d, want 0", got)
	}

	// A decrement on an already-zero counter stays at zero.
	got, err = store.Decrement(ctx)
	if err != nil {
		t.Fatalf("Decrement returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("Decrement below zero = %d, want 0", got)
	}
}
