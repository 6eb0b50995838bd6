package badgerdb

import (
	"context"
	"errors"
	"testing"

	"crud-tank/internal/ports/storage"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()

	if _, err := st.Load(ctx); !errors.Is(err, storage.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
	if err := st.Save(ctx, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(dir, "")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("unexpected document %q", got)
	}
}
