package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeAttemptStore mimics the INCR/EXPIRE/DEL subset the limiter uses,
// keeping counters in memory.
type fakeAttemptStore struct {
	counts  map[string]int64
	expires map[string]time.Duration
	incrErr error
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{
		counts:  make(map[string]int64),
		expires: make(map[string]time.Duration),
	}
}

func (f *fakeAttemptStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeAttemptStore) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeAttemptStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.counts[k]; ok {
			delete(f.counts, k)
			delete(f.expires, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestLoginLimiter_DeniesAfterMaxAttempts(t *testing.T) {
	store := newFakeAttemptStore()
	limiter := &LoginLimiter{client: store}
	ctx := context.Background()

	for i := 1; i <= maxAttempts; i++ {
		ok, err := limiter.Allow(ctx, "eve@example.com")
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i, err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}

	ok, err := limiter.Allow(ctx, "eve@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("attempt %d should be denied", maxAttempts+1)
	}
}

func TestLoginLimiter_WindowSetOnFirstAttempt(t *testing.T) {
	store := newFakeAttemptStore()
	limiter := &LoginLimiter{client: store}
	ctx := context.Background()

	if _, err := limiter.Allow(ctx, "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := limiter.Allow(ctx, "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := limiter.key("alice@example.com")
	if got := store.expires[key]; got != attemptWindow {
		t.Fatalf("expected TTL %v on %q, got %v", attemptWindow, key, got)
	}
	if len(store.expires) != 1 {
		t.Fatalf("expected a single TTL entry, got %d", len(store.expires))
	}
}

func TestLoginLimiter_ResetClearsWindow(t *testing.T) {
	store := newFakeAttemptStore()
	limiter := &LoginLimiter{client: store}
	ctx := context.Background()

	for i := 0; i <= maxAttempts; i++ {
		_, _ = limiter.Allow(ctx, "bob@example.com")
	}
	if ok, _ := limiter.Allow(ctx, "bob@example.com"); ok {
		t.Fatalf("expected attempts to be exhausted")
	}

	if err := limiter.Reset(ctx, "bob@example.com"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	ok, err := limiter.Allow(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a fresh window after reset")
	}
}

func TestLoginLimiter_CountersAreScopedPerEmail(t *testing.T) {
	store := newFakeAttemptStore()
	limiter := &LoginLimiter{client: store}
	ctx := context.Background()

	for i := 0; i <= maxAttempts; i++ {
		_, _ = limiter.Allow(ctx, "eve@example.com")
	}

	ok, err := limiter.Allow(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("one email's attempts must not throttle another")
	}
}
