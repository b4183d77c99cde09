package services

import "sync"

type userLock struct {
	mu   sync.Mutex
	refs int
}

// userLocks hands out one mutex per username. Entries are reference counted
// and dropped once nobody holds or waits for them, so probing random
// usernames does not grow the map.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

// lock blocks until userName's mutex is held and returns its release func.
func (l *userLocks) lock(userName string) func() {
	l.mu.Lock()
	ul, ok := l.locks[userName]
	if !ok {
		ul = &userLock{}
		l.locks[userName] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()

	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userName)
		}
		l.mu.Unlock()
	}
}

func (l *userLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
