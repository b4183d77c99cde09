// Package limiter tracks consecutive credential failures per username and
// reports how many attempts remain before lockout.
//
// The limiter knows nothing about sessions. Callers decide what a lockout
// means: refusing further logins, or dropping an authenticated session.
package limiter

import (
	"sync"
	"time"
)

type state struct {
	failures int
	lockedAt time.Time
}

// Limiter counts failures per username. It is safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	maxAttempts int
	cooldown    time.Duration
	now         func() time.Time
	states      map[string]*state
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces the time source; used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New returns a limiter that locks a username after maxAttempts consecutive
// failures. A positive cooldown makes Locked report a login block for that
// long after the lockout; zero disables the block.
func New(maxAttempts int, cooldown time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		now:         time.Now,
		states:      make(map[string]*state),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// MaxAttempts returns the configured threshold.
func (l *Limiter) MaxAttempts() int {
	return l.maxAttempts
}

// OnSuccess resets the failure count for username.
func (l *Limiter) OnSuccess(username string) {
	l.Reset(username)
}

// Reset forgets all failures recorded for username.
func (l *Limiter) Reset(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.states, username)
}

// OnFailure records a failure and returns the remaining budget,
// MaxAttempts minus the failure count. A result <= 0 means the caller must
// treat the account as locked.
func (l *Limiter) OnFailure(username string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.states[username]
	if !ok {
		st = &state{}
		l.states[username] = st
	}
	st.failures++

	remaining := l.maxAttempts - st.failures
	if remaining <= 0 && st.lockedAt.IsZero() {
		st.lockedAt = l.now()
	}
	return remaining
}

// Remaining returns the current budget for username without changing it.
func (l *Limiter) Remaining(username string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if st, ok := l.states[username]; ok {
		return l.maxAttempts - st.failures
	}
	return l.maxAttempts
}

// Locked reports whether logins for username are blocked and for how much
// longer. Once the cooldown has elapsed the counter is cleared, so the
// account gets a full budget again.
func (l *Limiter) Locked(username string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.states[username]
	if !ok || st.lockedAt.IsZero() || l.cooldown <= 0 {
		return false, 0
	}

	left := st.lockedAt.Add(l.cooldown).Sub(l.now())
	if left <= 0 {
		delete(l.states, username)
		return false, 0
	}
	return true, left
}
