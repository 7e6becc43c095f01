// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Package state provides a small thread-safe key-value store shared by the
// GUI goroutines. It keeps dialog guards reachable from systray callbacks
// without threading them through every signature.
package state

import (
	"sync"
)

var (
	mu   sync.RWMutex
	data = map[string]any{}
)

// Get retrieves the value stored under key, asserted to type T.
// It reports false when the key is absent or holds a different type.
func Get[T any](key string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()

	value, ok := data[key].(T)
	return value, ok
}

// Set stores value under key, replacing any previous entry.
// It is safe for concurrent use.
func Set[T any](key string, value T) {
	mu.Lock()
	data[key] = value
	mu.Unlock()
}

// Clear removes all entries.
func Clear() {
	mu.Lock()
	data = make(map[string]any)
	mu.Unlock()
}
