// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"sync"
)

// Mem is an in-memory implementation of the [Store] interface.
//
// Closing a Mem doesn't discard its contents, so the same Mem can be handed
// out by an opener that is called for every operation.
type Mem struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMem returns an empty Mem.
func NewMem() *Mem {
	return &Mem{entries: make(map[string]Entry)}
}

// Get retrieves an entry for a given key.
func (s *Mem) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

// Set stores an entry for a given key.
func (s *Mem) Set(_ context.Context, key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

// Len returns the number of stored entries.
func (s *Mem) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close is a no-op for Mem.
func (s *Mem) Close() error { return nil }
