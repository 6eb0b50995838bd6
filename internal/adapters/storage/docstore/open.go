package docstore

import (
	"context"
	"errors"
	"fmt"

	"crud-tank/internal/adapters/storage/badgerdb"
	"crud-tank/internal/adapters/storage/file"
	"crud-tank/internal/adapters/storage/httpdoc"
	"crud-tank/internal/adapters/storage/memory"
	pg "crud-tank/internal/adapters/storage/postgres"
	"crud-tank/internal/adapters/storage/s3"
	"crud-tank/internal/adapters/storage/sqlite"
	"crud-tank/internal/config"
	"crud-tank/internal/ports/storage"
)

// Open elige el backend según cfg.Driver (default file).
//
//	file     TANK_DATA_FILE
//	memory   (sin config; se pierde al reiniciar)
//	sqlite   TANK_SQLITE_PATH
//	postgres DB_DSN
//	s3       TANK_S3_BUCKET, TANK_S3_KEY, TANK_S3_REGION, TANK_S3_ENDPOINT, TANK_S3_PATH_STYLE
//	badger   TANK_BADGER_DIR
//	http     TANK_STORE_URL, TANK_STORE_API_KEY
func Open(ctx context.Context, cfg config.Store) (storage.DocumentStore, storage.Driver, error) {
	driver := storage.Driver(cfg.Driver)
	if driver == "" {
		driver = storage.DriverFile
	}

	var (
		st  storage.DocumentStore
		err error
	)

	switch driver {
	case storage.DriverFile:
		st, err = file.New(cfg.DataFile)
	case storage.DriverMemory:
		st = memory.NewDocumentStore()
	case storage.DriverSQLite:
		st, err = sqlite.Open(cfg.SQLitePath, sqlite.DefaultDocumentName)
	case storage.DriverPostgres:
		st, err = openPostgres(ctx, cfg.DBDSN)
	case storage.DriverS3:
		st, err = s3.New(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Key:       cfg.S3Key,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	case storage.DriverBadger:
		st, err = badgerdb.Open(cfg.BadgerDir, badgerdb.DefaultKey)
	case storage.DriverHTTP:
		st, err = httpdoc.New(httpdoc.Config{URL: cfg.URL, APIKey: cfg.APIKey})
	default:
		return nil, "", fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open %s store: %w", driver, err)
	}
	return st, driver, nil
}

func openPostgres(ctx context.Context, dsn string) (storage.DocumentStore, error) {
	if dsn == "" {
		return nil, errors.New("DB_DSN required for postgres driver")
	}
	db, err := pg.Open(dsn)
	if err != nil {
		return nil, err
	}
	st, err := pg.NewDocumentStore(ctx, db, pg.DefaultDocumentName)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}
