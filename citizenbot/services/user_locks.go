package services

import "sync"

// UserLocks hands out one mutex per citizen. Entries are dropped once nobody holds or waits on them.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[string]*userLock)}
}

// Lock blocks until the caller owns discordID. The returned func releases it.
func (l *UserLocks) Lock(discordID string) func() {
	l.mu.Lock()
	ul, ok := l.locks[discordID]
	if !ok {
		ul = &userLock{}
		l.locks[discordID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()
	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, discordID)
		}
		l.mu.Unlock()
	}
}

// Len is the number of citizens currently locked or waiting.
func (l *UserLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
