package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crud-tank/internal/ports/storage"

	"github.com/dgraph-io/badger/v4"
)

const (
	DefaultDir = "data/badger"
	DefaultKey = "doc:fish"
)

// Store guarda el dataset bajo una sola key de Badger.
type Store struct {
	db  *badger.DB
	key []byte
}

func Open(dir, key string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = DefaultDir
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db, key: []byte(key)}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, data)
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
