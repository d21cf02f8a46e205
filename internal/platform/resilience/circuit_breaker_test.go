package resilience

import (
	"errors"
	"testing"
	"time"
)

func testBreaker(threshold int, openTimeout time.Duration, halfOpenMax int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMax,
	})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b, _ := testBreaker(3, time.Minute, 1)

	for i := 0; i < 2; i++ {
		b.RecordFailure()
		if err := b.Allow(); err != nil {
			t.Fatalf("breaker tripped early after %d failures", i+1)
		}
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state = %s, want open", got)
	}
}

func TestCircuitBreaker_SuccessResetsFailureRun(t *testing.T) {
	t.Parallel()

	b, _ := testBreaker(2, time.Minute, 1)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	if err := b.Allow(); err != nil {
		t.Fatalf("breaker must stay closed when failures are not consecutive: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenProbesAndCloses(t *testing.T) {
	t.Parallel()

	b, now := testBreaker(1, 30*time.Second, 1)

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("breaker should be open")
	}

	*now = now.Add(31 * time.Second)
	if got := b.State(); got != CircuitStateHalfOpen {
		t.Fatalf("state = %s, want half_open after timeout", got)
	}

	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("second concurrent probe must be rejected")
	}

	b.RecordSuccess()
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed after successful probe", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b, now := testBreaker(1, 30*time.Second, 1)

	b.RecordFailure()
	*now = now.Add(31 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("breaker must reopen after a failed probe")
	}
}

func TestNormalizeCircuitBreakerConfig_Defaults(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{})
	if got.FailureThreshold < 1 || got.OpenTimeout <= 0 || got.HalfOpenMaxReq < 1 {
		t.Fatalf("defaults not applied: %+v", got)
	}
}
