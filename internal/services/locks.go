package services

import "sync"

// UserLocker hands out one mutex per user ID. Balance-affecting operations
// (purchase, top-up) take the user's lock so the uniqueness check and the
// debit are never separately observable to a concurrent call for the same
// user.
type UserLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewUserLocker creates an empty UserLocker.
func NewUserLocker() *UserLocker {
	return &UserLocker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the given user and returns the release func.
func (l *UserLocker) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
