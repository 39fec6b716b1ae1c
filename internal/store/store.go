// Package store implements the flat-file record store: one JSON file
// per entity kind, holding the entire collection as a single array.
// There are no partial writes and no indexing; every mutation is a
// whole-file rewrite performed by the caller.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Collection is a whole-collection file store for one entity kind.
// It is not safe for concurrent writers: two interleaved
// read-modify-write cycles silently lose one of the updates. The
// system assumes a single process and a single caller at a time per
// collection.
type Collection[T any] struct {
	path string
}

// NewCollection returns a collection backed by <dir>/<name>.json.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name+".json")}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the entire collection. An absent file is an empty
// collection, not an error. On a read or decode failure Load still
// returns an empty (never nil) slice so the caller's read path sees no
// stale data, together with the underlying error. A JSON "null" body
// normalizes to empty.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return []T{}, fmt.Errorf("read %s: %w", c.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save overwrites the collection with the given items. A nil slice is
// written as an empty array.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// Clear resets the collection to an empty array.
func (c *Collection[T]) Clear() error {
	return c.Save(nil)
}
