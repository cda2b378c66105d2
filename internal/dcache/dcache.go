// Package dcache persists the last published diagnostic list inside the
// build-artifact cache directory, so a restarted process can show the
// previous list before its first rebuild.
package dcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"reforge/internal/diag"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

const fileName = "diagnostics.mp"

// Cache stores the diagnostic list on disk. Thread-safe for concurrent
// access. A nil *Cache is a no-op.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type payload struct {
	// Schema version for safe invalidation when the format changes.
	Schema  uint16
	Records []diag.Record
}

// Open returns a cache rooted at dir. The directory is created lazily on
// the first Put.
func Open(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) path() string {
	return filepath.Join(c.dir, fileName)
}

// Put atomically replaces the stored list.
func (c *Cache) Put(records []diag.Record) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create cache dir %q: %w", c.dir, err)
	}
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload{Schema: schemaVersion, Records: records}); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, c.path()); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads the stored list. A missing file or a schema mismatch is a
// cache miss, not an error.
func (c *Cache) Get() ([]diag.Record, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var p payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, false, err
	}
	if p.Schema != schemaVersion {
		return nil, false, nil
	}
	return p.Records, true, nil
}

// Drop removes the stored list without touching the rest of the cache
// directory.
func (c *Cache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
