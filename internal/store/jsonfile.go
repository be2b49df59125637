// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.astrophena.name/tldrr/internal/atomicio"
)

// JSONFile is a file-backed implementation of the [Store] interface.
//
// The whole file is read when it's opened and rewritten on every Set.
type JSONFile struct {
	path string
	data jsonStore
}

type jsonStore struct {
	Data map[string]jsonEntry `json:"data"`
}

type jsonEntry struct {
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// NewJSONFile opens the JSON store at path. A missing file is an empty store.
func NewJSONFile(path string) (*JSONFile, error) {
	s := &JSONFile{path: path}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(b, &s.data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if s.data.Data == nil {
		s.data.Data = make(map[string]jsonEntry)
	}

	return s, nil
}

// Get retrieves an entry for a given key.
func (s *JSONFile) Get(_ context.Context, key string) (Entry, bool, error) {
	e, ok := s.data.Data[key]
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{Value: e.Value, Timestamp: e.Timestamp}, true, nil
}

// Set stores an entry for a given key and writes the file.
func (s *JSONFile) Set(_ context.Context, key string, e Entry) error {
	s.data.Data[key] = jsonEntry{Value: e.Value, Timestamp: e.Timestamp}
	b, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return atomicio.WriteFile(s.path, b, 0o600)
}

// Close is a no-op for JSONFile; every Set is already on disk.
func (s *JSONFile) Close() error { return nil }
