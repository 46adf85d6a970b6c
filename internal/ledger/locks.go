package ledger

import "sync"

// keyedMutex serializes mutations per entity id. Two concurrent withdrawals
// against the same account would otherwise both read the same starting
// balance and both pass the funds check.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (k *keyedMutex) get(id int64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	return m
}

// lock acquires the mutex for one entity and returns its unlock func
func (k *keyedMutex) lock(id int64) func() {
	m := k.get(id)
	m.Lock()
	return m.Unlock
}

// lockPair acquires two entity mutexes in ascending id order so that
// concurrent transfers in opposite directions cannot deadlock.
func (k *keyedMutex) lockPair(a, b int64) func() {
	if a == b {
		return k.lock(a)
	}
	if a > b {
		a, b = b, a
	}
	first := k.get(a)
	second := k.get(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
