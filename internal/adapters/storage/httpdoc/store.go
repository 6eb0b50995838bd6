package httpdoc

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"crud-tank/internal/platform/httpclient"
	"crud-tank/internal/ports/storage"
)

// Config del store remoto. URL apunta al documento: GET lo lee, PUT lo reemplaza.
type Config struct {
	URL    string
	APIKey string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Tope del documento; 0 => httpclient.DefaultMaxBody.
	MaxBody int64

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Store struct {
	client  *httpclient.Client
	url     string
	headers map[string]string
}

func New(cfg Config) (*Store, error) {
	u := strings.TrimSpace(cfg.URL)
	if u == "" {
		return nil, errors.New("httpdoc: url required")
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return nil, errors.New("httpdoc: url must be absolute")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	headers := map[string]string{"Accept": "application/json"}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		h := strings.TrimSpace(cfg.APIKeyHeader)
		if h == "" {
			h = "X-Api-Key"
		}
		headers[h] = key
	}

	client := httpclient.NewWithTransport(timeout, cfg.Transport)
	client.MaxBody = cfg.MaxBody

	return &Store{
		client:  client,
		url:     u,
		headers: headers,
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Do(ctx, http.MethodGet, s.url, s.headers, nil, "")
	if err != nil {
		if httpclient.IsStatus(err, http.StatusNotFound) {
			return nil, storage.ErrNoDocument
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	_, err := s.client.Do(ctx, http.MethodPut, s.url, s.headers, data, "application/json")
	return err
}

func (s *Store) Close() error { return nil }
