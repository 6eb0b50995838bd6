package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crud-tank/internal/ports/storage"

	_ "modernc.org/sqlite"
)

const (
	DefaultPath         = "data/tank.db"
	DefaultDocumentName = "fish"
)

// DocumentStore guarda el dataset como una fila de la tabla documents.
type DocumentStore struct {
	db       *sql.DB
	name     string
	loadStmt *sql.Stmt
	saveStmt *sql.Stmt
}

func Open(dbPath, name string) (*DocumentStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		dbPath = DefaultPath
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultDocumentName
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout para esperar locks; WAL + synchronous NORMAL
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	load, err := db.Prepare(`SELECT payload FROM documents WHERE name = ?`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	save, err := db.Prepare(`
		INSERT INTO documents (name, payload, updated_at)
		VALUES (?,?,?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		_ = load.Close()
		_ = db.Close()
		return nil, err
	}

	return &DocumentStore{db: db, name: name, loadStmt: load, saveStmt: save}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			name        TEXT    PRIMARY KEY,
			payload     BLOB    NOT NULL,
			updated_at  INTEGER NOT NULL
		);
	`)
	return err
}

func (s *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	var payload []byte
	if err := s.loadStmt.QueryRowContext(ctx, s.name).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoDocument
		}
		return nil, err
	}
	return payload, nil
}

func (s *DocumentStore) Save(ctx context.Context, data []byte) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	_, err := s.saveStmt.ExecContext(ctx, s.name, data, time.Now().Unix())
	return err
}

func (s *DocumentStore) Close() error {
	if s.loadStmt != nil {
		_ = s.loadStmt.Close()
	}
	if s.saveStmt != nil {
		_ = s.saveStmt.Close()
	}
	return s.db.Close()
}
