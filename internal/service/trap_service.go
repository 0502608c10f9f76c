package service

import "sync"

// TrapService holds the backend-outage flag. While active, routing is fully
// pre-empted: every route resolves to the fallback view until an explicit
// reset. A failed remote user load trips the same flag, so upstream failures
// surface through the trap instead of dying unhandled.
type TrapService interface {
	Trigger(reason string)
	Reset()
	Active() bool
	Reason() string
}

type trapService struct {
	mu     sync.RWMutex
	active bool
	reason string
}

func NewTrapService() TrapService {
	return &trapService{}
}

func (s *trapService) Trigger(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	if reason == "" {
		reason = "simulated backend outage"
	}
	s.reason = reason
}

func (s *trapService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.reason = ""
}

func (s *trapService) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *trapService) Reason() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reason
}
