package orchestrator

import (
	"fmt"
	"sync"
)

// recordLocks serialises handler invocations per (model, record_id). Locks
// are created on first use and never released back; the key space is small
// (active records only) and entries are a mutex each.
type recordLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRecordLocks() *recordLocks {
	return &recordLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for one record and returns its unlock function.
func (r *recordLocks) acquire(model string, recordID int64) func() {
	key := fmt.Sprintf("%s:%d", model, recordID)

	r.mu.Lock()
	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
