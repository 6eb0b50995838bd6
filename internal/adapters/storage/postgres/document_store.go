package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"crud-tank/internal/ports/storage"
)

const DefaultDocumentName = "fish"

// DocumentStore guarda el dataset como una fila de tank_documents.
// payload es TEXT (no JSONB) para devolver exactamente lo que se escribió.
type DocumentStore struct {
	db   *sql.DB
	name string
	now  func() time.Time
}

func NewDocumentStore(ctx context.Context, db *sql.DB, name string) (*DocumentStore, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultDocumentName
	}
	if err := ensureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &DocumentStore{db: db, name: name, now: time.Now}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tank_documents (
			name       TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM tank_documents
		WHERE name = $1
	`, s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoDocument
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (s *DocumentStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tank_documents (name, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`,
		s.name,
		string(data),
		s.now().UTC(),
	)
	return err
}

func (s *DocumentStore) Close() error {
	return s.db.Close()
}
