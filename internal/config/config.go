package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string
	AppName string

	LogLevel  string
	LogFormat string

	// Firma de la cookie de flash messages.
	FlashSecret string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	Store Store
}

// Store elige y configura el backend del documento.
type Store struct {
	Driver string

	DataFile   string
	SQLitePath string
	DBDSN      string
	BadgerDir  string

	S3Bucket    string
	S3Key       string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	URL    string
	APIKey string
}

// Load lee el entorno. Si existe un .env lo carga primero
// (sin pisar variables ya definidas); si no existe, se ignora.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	readTimeout, err := loadSeconds("HTTP_READ_TIMEOUT", 5)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := loadSeconds("HTTP_WRITE_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := loadSeconds("SHUTDOWN_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}

	pathStyle, err := loadBool("TANK_S3_PATH_STYLE", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:            addr,
		AppName:         loadString("APP_NAME", "crud-tank"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		FlashSecret:     loadString("FLASH_SECRET", "crud-tank-dev-secret"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		Store: Store{
			Driver:      strings.ToLower(loadString("TANK_STORE_DRIVER", "file")),
			DataFile:    loadString("TANK_DATA_FILE", "data/fish.json"),
			SQLitePath:  loadString("TANK_SQLITE_PATH", "data/tank.db"),
			DBDSN:       os.Getenv("DB_DSN"),
			BadgerDir:   loadString("TANK_BADGER_DIR", "data/badger"),
			S3Bucket:    os.Getenv("TANK_S3_BUCKET"),
			S3Key:       loadString("TANK_S3_KEY", "fish.json"),
			S3Region:    os.Getenv("TANK_S3_REGION"),
			S3Endpoint:  os.Getenv("TANK_S3_ENDPOINT"),
			S3PathStyle: pathStyle,
			URL:         os.Getenv("TANK_STORE_URL"),
			APIKey:      os.Getenv("TANK_STORE_API_KEY"),
		},
	}, nil
}

func loadString(key, defValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defValue
}

func loadInt(key string, defValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func loadSeconds(key string, defValue int) (time.Duration, error) {
	n, err := loadInt(key, defValue)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return time.Duration(n) * time.Second, nil
}

func loadBool(key string, defValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
