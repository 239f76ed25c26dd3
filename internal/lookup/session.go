package lookup

import (
	"context"
	"sync"
)

// Session holds the result currently on display for one client. A newer
// submission always wins: results of superseded lookups are dropped even if
// they finish later.
type Session struct {
	resolver *Resolver
	onAccept func(Result)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest *Result
}

// NewSession returns a session backed by resolver. onAccept, when non-nil,
// runs for every accepted result while the session lock is held, so
// deliveries happen in acceptance order.
func NewSession(resolver *Resolver, onAccept func(Result)) *Session {
	return &Session{resolver: resolver, onAccept: onAccept}
}

// Submit starts a lookup for input, superseding any lookup still in flight.
// The bool reports whether the result was accepted as the latest.
func (s *Session) Submit(ctx context.Context, input string) (Result, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	res := s.resolver.Resolve(ctx, input)
	res.Seq = seq

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return res, false
	}
	s.cancel = nil
	s.latest = &res
	if s.onAccept != nil {
		s.onAccept(res)
	}
	return res, true
}

// Latest returns the accepted result on display, if any.
func (s *Session) Latest() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return Result{}, false
	}
	return *s.latest, true
}

// Close cancels the lookup in flight, if any. Its result is dropped instead of
// being delivered.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
