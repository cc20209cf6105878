package bindings

import "sync"

// Reset drops the initialization state so lifecycle tests can run Open again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	initOnce = sync.Once{}
	ready = make(chan struct{})
	initErr = nil
	live.Store(false)
	next = 1
	reg = map[Handle]struct{}{}
}
