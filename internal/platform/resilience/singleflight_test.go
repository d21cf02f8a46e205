package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var sf SingleFlight
	var calls atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var shared atomic.Int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, wasShared := sf.Do("key", func() (any, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if v.(int) != 42 {
				t.Errorf("unexpected value: %v", v)
			}
			if wasShared {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fn called %d times, want 1", got)
	}
	if got := shared.Load(); got != workers-1 {
		t.Fatalf("%d callers reported shared, want %d", got, workers-1)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var sf SingleFlight
	var calls atomic.Int32

	fn := func() (any, error) {
		calls.Add(1)
		return nil, nil
	}

	if _, err, _ := sf.Do("a", fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err, _ := sf.Do("b", fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("fn called %d times, want 2", got)
	}
}

func TestSingleFlight_PropagatesErrorToAllWaiters(t *testing.T) {
	t.Parallel()

	var sf SingleFlight
	wantErr := errors.New("boom")

	_, err, _ := sf.Do("k", func() (any, error) { return nil, wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}

	// Key must be released after the failed call.
	v, err, _ := sf.Do("k", func() (any, error) { return "ok", nil })
	if err != nil || v.(string) != "ok" {
		t.Fatalf("second call got v=%v err=%v", v, err)
	}
}
