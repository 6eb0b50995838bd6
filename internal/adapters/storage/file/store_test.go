package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"crud-tank/internal/ports/storage"
)

func TestStore_MissingFileIsNoDocument(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "nested", "dir", "fish.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = st.Load(context.Background())
	if !errors.Is(err, storage.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
	if _, err := os.Stat(filepath.Dir(st.Path())); err != nil {
		t.Fatalf("expected data dir to be created: %v", err)
	}
}

func TestStore_SaveReplacesWholeFile(t *testing.T) {
	dir := t.TempDir()
	st, err := New(filepath.Join(dir, "fish.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if err := st.Save(ctx, []byte(`[{"id":"a"},{"id":"b"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Save(ctx, []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected [], got %q", got)
	}

	// no quedan temporales
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only fish.json in dir, got %d entries", len(entries))
	}
}

func TestNew_DefaultPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	st, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st.Path() != DefaultPath {
		t.Fatalf("expected %s, got %s", DefaultPath, st.Path())
	}
}
