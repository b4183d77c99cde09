package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserLocks_SameUserSerializes(t *testing.T) {
	l := newUserLocks()

	unlock := l.lock("alice")

	acquired := make(chan struct{})
	go func() {
		release := l.lock("alice")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock for the same user must wait")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	<-acquired
}

func TestUserLocks_DifferentUsersDoNotBlock(t *testing.T) {
	l := newUserLocks()

	unlockA := l.lock("alice")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		l.lock("bob")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for another user must not block")
	}
}

func TestUserLocks_EntriesAreReleased(t *testing.T) {
	l := newUserLocks()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.lock("alice")()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, l.size())
}
