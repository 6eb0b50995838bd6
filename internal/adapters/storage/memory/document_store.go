package memory

import (
	"context"
	"sync"

	"crud-tank/internal/ports/storage"
)

// DocumentStore guarda el documento en memoria (tests / modo dev).
// El mutex solo protege el slice; el ciclo load-mutate-save del
// repositorio sigue sin exclusión mutua.
type DocumentStore struct {
	mu      sync.RWMutex
	data    []byte
	present bool
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// NewDocumentStoreWith arranca con un documento ya cargado.
func NewDocumentStoreWith(data []byte) *DocumentStore {
	s := &DocumentStore{}
	s.set(data)
	return s
}

func (s *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return nil, storage.ErrNoDocument
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *DocumentStore) Save(ctx context.Context, data []byte) error {
	s.set(data)
	return nil
}

func (s *DocumentStore) Close() error { return nil }

func (s *DocumentStore) set(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.present = true
}
