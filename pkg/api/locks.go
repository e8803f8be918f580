package api

import "sync"

// boardLocks serializes mutations per board. Two clients editing different
// boards proceed in parallel; two edits to the same board queue up, which is
// what makes apply-then-persist atomic without store-level transactions.
//
// Entries are never removed. The map grows with the number of distinct
// boards mutated over the process lifetime, which is bounded and small for
// dashboard workloads.
type boardLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newBoardLocks() *boardLocks {
	return &boardLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for a board and returns the unlock function.
func (l *boardLocks) lock(boardID string) func() {
	l.mu.Lock()
	m, ok := l.locks[boardID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[boardID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
