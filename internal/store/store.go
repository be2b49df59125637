// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package store implements a persistent key-value store of timestamped
// entries, backed by SQLite, a JSON file or memory.
package store

import (
	"context"
	"fmt"
	"time"
)

// Entry is a stored value together with the time it was written.
type Entry struct {
	Value     string
	Timestamp time.Time
}

// Store is a generic interface for a key-value store.
//
// Stores don't interpret timestamps; expiry is decided by readers.
type Store interface {
	// Get retrieves an entry for a given key.
	// It must return (Entry{}, false, nil) if the key is not found.
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Set stores an entry for a given key, replacing any previous one.
	Set(ctx context.Context, key string, e Entry) error
	// Close closes the store and releases any resources.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Open opens the store of the named backend at path.
func Open(ctx context.Context, backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLite(ctx, path)
	case BackendJSON:
		return NewJSONFile(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
