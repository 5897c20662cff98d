package processor

import (
	"context"
	"sync"
)

// KeyedLocker is an in-process Locker holding one mutex per key. Entries are
// dropped once no goroutine holds or waits for them.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	ch      chan struct{}
	waiters int
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*keyedEntry)}
}

// Lock blocks until the key is free or ctx is done
func (l *KeyedLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &keyedEntry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.waiters++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, e, true) })
	}, nil
}

func (l *KeyedLocker) release(key string, e *keyedEntry, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held {
		<-e.ch
	}
	e.waiters--
	if e.waiters == 0 {
		delete(l.locks, key)
	}
}

// size reports how many keys are tracked
func (l *KeyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
