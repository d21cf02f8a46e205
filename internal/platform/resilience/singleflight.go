package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one
// execution; every waiter receives the same result.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key at a time. The third return reports whether the
// result was shared with an already running call.
func (s *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	s.mu.Lock()
	if s.inflight == nil {
		s.inflight = make(map[string]*flight)
	}
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	s.inflight[key] = f
	s.mu.Unlock()

	f.val, f.err = fn()

	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
	close(f.done)

	return f.val, f.err, false
}
