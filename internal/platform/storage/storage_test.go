package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	in := []string{"a", "b"}
	if err := store.Put("things", in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var out []string
	if err := store.Get("things", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(out) != 2 || out[0] != "a" {
		t.Fatalf("unexpected value: %v", out)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	var out []string
	if err := store.Get("absent", &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCorruptValue(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out map[string]string
	if err := store.Get("broken", &out); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if err := store.Put("k", 1); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put("k", 2); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	var out int
	if err := store.Get("k", &out); err != nil || out != 2 {
		t.Fatalf("expected 2, got %d (%v)", out, err)
	}
}

func TestSubscribeNotifiedOnPut(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	var seen []string
	store.Subscribe(func(key string) { seen = append(seen, key) })

	if err := store.Put("roster", []string{}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != "roster" {
		t.Fatalf("expected one notification for roster, got %v", seen)
	}
}
