package dcache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"reforge/internal/diag"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := Open(t.TempDir())
	want := []diag.Record{
		{Path: "a.cfg", Line: 1, Col: 2, Severity: diag.SevError, Message: "boom"},
		{Path: "b.cfg", Line: 3, Col: 4, Severity: diag.SevWarning, Message: "multi\nline"},
	}

	if err := c.Put(want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok, err := c.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestGetMissingIsMiss(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "never-created"))
	_, ok, err := c.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected a cache miss")
	}
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := Open(dir)

	stale, err := msgpack.Marshal(&payload{Schema: schemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), stale, 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, ok, err := c.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected schema mismatch to read as a miss")
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	c := Open(t.TempDir())
	if err := c.Put([]diag.Record{{Path: "old", Line: 1, Col: 1}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := c.Put([]diag.Record{}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok, err := c.Get()
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty list after replacement, got %+v", got)
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	if err := c.Put(nil); err != nil {
		t.Errorf("Expected nil cache Put to be a no-op, got %v", err)
	}
	if _, ok, err := c.Get(); ok || err != nil {
		t.Errorf("Expected nil cache Get to miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Drop(); err != nil {
		t.Errorf("Expected nil cache Drop to be a no-op, got %v", err)
	}
}

func TestDrop(t *testing.T) {
	c := Open(t.TempDir())
	if err := c.Put([]diag.Record{{Path: "x", Line: 1, Col: 1}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := c.Drop(); err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if _, ok, _ := c.Get(); ok {
		t.Error("Expected a miss after Drop")
	}
}
