package middleware

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestTokenBucketBurstThenDeny(t *testing.T) {
	bucket := NewTokenBucket(2, 0) // no refill

	if !bucket.Allow() {
		t.Fatal("first request should be allowed")
	}
	if !bucket.Allow() {
		t.Fatal("second request should be allowed")
	}
	if bucket.Allow() {
		t.Fatal("third request should be denied")
	}
	if got := bucket.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := NewTokenBucket(1, 1000) // refills a token in about a millisecond

	if !bucket.Allow() {
		t.Fatal("first request should be allowed")
	}
	time.Sleep(5 * time.Millisecond)
	if !bucket.Allow() {
		t.Fatal("request after refill should be allowed")
	}
}

func TestSessionRateLimiterIsPerSession(t *testing.T) {
	limiter := NewSessionRateLimiter(RateLimiterConfig{
		MessagesPerMinute: 0,
		BurstSize:         1,
		CleanupInterval:   time.Minute,
	}, zap.NewNop())
	defer limiter.Stop()

	first := uuid.New()
	second := uuid.New()

	if !limiter.AllowMessage(first) {
		t.Fatal("first session should get its burst token")
	}
	if limiter.AllowMessage(first) {
		t.Fatal("first session should be out of tokens")
	}
	if !limiter.AllowMessage(second) {
		t.Fatal("second session should have its own bucket")
	}

	remaining, limit := limiter.GetMessageLimit(second)
	if limit != 1 {
		t.Errorf("limit = %d, want 1", limit)
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
}
