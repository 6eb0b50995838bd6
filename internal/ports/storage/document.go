package storage

import (
	"context"
	"errors"
)

// ErrNoDocument indica que el backend todavía no tiene el documento.
// El repositorio lo interpreta como dataset vacío.
var ErrNoDocument = errors.New("document not found")

// Driver identifica el backend concreto.
type Driver string

const (
	DriverFile     Driver = "file"
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
	DriverBadger   Driver = "badger"
	DriverHTTP     Driver = "http"
)

// DocumentStore guarda un único documento (el dataset completo) y lo
// reescribe entero en cada Save.
type DocumentStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
