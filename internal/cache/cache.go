// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cache implements a time-expiring cache of lookup results on top of
// a [store.Store].
//
// The underlying store is opened for every operation and closed before the
// operation returns, so no handle outlives a single Get or Put. Storage
// failures never reach the caller: they are logged and reads turn into
// misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"go.astrophena.name/tldrr/internal/logger"
	"go.astrophena.name/tldrr/internal/store"
)

// Expiry is how long a cached entry stays valid.
const Expiry = 30 * 24 * time.Hour

// Kinds of cached data, mixed into the key.
const (
	KindTLDR = "tldr"
	// KindGPT is reserved for generated examples. They are never cached, so
	// nothing stores entries of this kind; it only keeps the key space apart.
	KindGPT = "gpt"
)

// Key derives the cache key for command and kind. It's the hex-encoded
// SHA-256 of "<command>_<kind>".
func Key(command, kind string) string {
	h := sha256.Sum256([]byte(command + "_" + kind))
	return hex.EncodeToString(h[:])
}

// Cache is a time-expiring cache. A nil *Cache never hits and never stores.
type Cache struct {
	// Open opens the underlying store. It's called once per operation.
	Open func(context.Context) (store.Store, error)
	// Logf logs storage failures. If nil, they are dropped.
	Logf logger.Logf
	// Debugf, if set, logs hits and misses.
	Debugf logger.Logf
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Cache backed by the store of the given backend at path.
func New(backend, path string, logf logger.Logf) *Cache {
	return &Cache{
		Open: func(ctx context.Context) (store.Store, error) {
			return store.Open(ctx, backend, path)
		},
		Logf: logf,
	}
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Get returns the value cached under key if it exists and is younger than
// [Expiry].
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.Open == nil {
		return "", false
	}
	e, ok, err := c.get(ctx, key)
	if err != nil {
		logger.Or(c.Logf)("Error accessing cache: %v", err)
		return "", false
	}
	if !ok {
		logger.Or(c.Debugf)("cache: miss %s", key)
		return "", false
	}
	if c.now().Sub(e.Timestamp) >= Expiry {
		logger.Or(c.Debugf)("cache: expired %s", key)
		return "", false
	}
	logger.Or(c.Debugf)("cache: hit %s", key)
	return e.Value, true
}

func (c *Cache) get(ctx context.Context, key string) (e store.Entry, ok bool, err error) {
	s, err := c.Open(ctx)
	if err != nil {
		return store.Entry{}, false, err
	}
	defer func() { err = errors.Join(err, s.Close()) }()
	return s.Get(ctx, key)
}

// Put caches value under key, stamped with the current time.
func (c *Cache) Put(ctx context.Context, key, value string) {
	if c == nil || c.Open == nil {
		return
	}
	if err := c.put(ctx, key, value); err != nil {
		logger.Or(c.Logf)("Error writing cache: %v", err)
	}
}

func (c *Cache) put(ctx context.Context, key, value string) (err error) {
	s, err := c.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close()) }()
	return s.Set(ctx, key, store.Entry{Value: value, Timestamp: c.now()})
}
