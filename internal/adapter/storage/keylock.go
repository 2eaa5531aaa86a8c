package storage

import (
	"context"
	"sort"
	"sync"
)

// keyLocks hands out one exclusive lock per key. Entries are dropped once no
// holder or waiter references them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (k *keyLocks) ref(key string) *keyLock {
	k.mu.Lock()
	defer k.mu.Unlock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	return l
}

func (k *keyLocks) unref(key string, l *keyLock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}

// acquire locks key, waiting until it is free or ctx is done.
func (k *keyLocks) acquire(ctx context.Context, key string) error {
	l := k.ref(key)
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.unref(key, l)
		return ctx.Err()
	}
}

func (k *keyLocks) release(key string) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()
	if l == nil {
		return
	}
	<-l.ch
	k.unref(key, l)
}

// sortedKeys prefixes, sorts and dedups ids, skipping empty ones.
func sortedKeys(prefix string, ids []string) []string {
	keys := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		key := prefix + id
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
