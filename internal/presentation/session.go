package presentation

import (
	"context"
	"sync"
)

// Ticket identifies one analysis started through a Session.
type Ticket uint64

// Session tracks which analysis is current. Starting a new one cancels the
// previous context, and results carrying an older ticket must be dropped.
type Session struct {
	mu     sync.Mutex
	gen    Ticket
	cancel context.CancelFunc
}

func NewSession() *Session {
	return &Session{}
}

// Begin supersedes any in-flight analysis and returns the context and ticket
// for the new one.
func (s *Session) Begin(parent context.Context) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.gen++
	return ctx, s.gen
}

// Current reports whether t is still the latest ticket.
func (s *Session) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t == s.gen
}

// Finish releases the context for t if it is still current.
func (s *Session) Finish(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == s.gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Close cancels whatever is in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}
