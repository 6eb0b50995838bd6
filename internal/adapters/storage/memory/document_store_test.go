package memory

import (
	"context"
	"errors"
	"testing"

	"crud-tank/internal/ports/storage"
)

func TestDocumentStore_LoadSave(t *testing.T) {
	st := NewDocumentStore()
	ctx := context.Background()

	if _, err := st.Load(ctx); !errors.Is(err, storage.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument on empty store, got %v", err)
	}

	in := []byte(`[{"id":"a"}]`)
	if err := st.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	in[0] = 'X' // el store guarda su propia copia

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("unexpected document %q", got)
	}

	got[0] = 'Y'
	again, _ := st.Load(ctx)
	if string(again) != `[{"id":"a"}]` {
		t.Fatalf("Load must return a copy, got %q", again)
	}
}
