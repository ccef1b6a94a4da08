package usecase

import "sync"

type gameLock struct {
	mu   sync.Mutex
	refs int
}

// gameLocks hands out one mutex per game id. Entries live only while someone holds or waits.
type gameLocks struct {
	mu    sync.Mutex
	locks map[int64]*gameLock
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[int64]*gameLock),
	}
}

// Lock - blocks until the game is free and returns the matching unlock func.
func (that *gameLocks) Lock(id int64) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &gameLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocks) len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
