package services

import "sync"

// symbolLocks hands out one mutex per ticker symbol so that recomputing and
// storing an average price for the same symbol never interleaves.
type symbolLocks struct {
	mutex sync.Mutex
	locks map[string]*symbolLock
}

type symbolLock struct {
	sync.Mutex
	refs int
}

func newSymbolLocks() *symbolLocks {
	return &symbolLocks{locks: make(map[string]*symbolLock)}
}

// Lock blocks until the symbol is free and returns the matching unlock func.
func (s *symbolLocks) Lock(tickerSymbol string) func() {
	s.mutex.Lock()
	lock, ok := s.locks[tickerSymbol]
	if !ok {
		lock = &symbolLock{}
		s.locks[tickerSymbol] = lock
	}
	lock.refs++
	s.mutex.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		s.mutex.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.locks, tickerSymbol)
		}
		s.mutex.Unlock()
	}
}

func (s *symbolLocks) size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.locks)
}
