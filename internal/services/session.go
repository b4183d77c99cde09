package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one caller's authentication state: anonymous, or bound to a
// username. A Session is created empty and is only ever changed by
// VaultService; it is safe to share between goroutines.
type Session struct {
	mu       sync.Mutex
	id       string
	userName string
	boundAt  time.Time
}

// NewSession returns an anonymous session with a fresh random ID.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// UserName returns the bound username, or false if the session is anonymous.
// It does not check expiry; use VaultService.CurrentUser for that.
func (s *Session) UserName() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName, s.userName != ""
}

func (s *Session) state() (string, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName, s.boundAt, s.userName != ""
}

func (s *Session) bind(userName string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName = userName
	s.boundAt = at
}

// clearIf drops the binding only if the session is still bound to userName,
// so a concurrent re-login as someone else is not undone.
func (s *Session) clearIf(userName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userName != userName {
		return false
	}
	s.userName = ""
	s.boundAt = time.Time{}
	return true
}
