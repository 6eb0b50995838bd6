package docstore

import (
	"context"
	"errors"
	"time"

	"crud-tank/internal/platform/metrics"
	"crud-tank/internal/ports/storage"
)

// Instrumented registra latencia y resultado de cada Load/Save.
type Instrumented struct {
	next    storage.DocumentStore
	driver  string
	metrics *metrics.Metrics
}

func Instrument(next storage.DocumentStore, driver storage.Driver, m *metrics.Metrics) storage.DocumentStore {
	if m == nil {
		return next
	}
	return &Instrumented{next: next, driver: string(driver), metrics: m}
}

func (s *Instrumented) Load(ctx context.Context) ([]byte, error) {
	start := time.Now()
	b, err := s.next.Load(ctx)
	s.metrics.ObserveStore(s.driver, "load", result(err), time.Since(start))
	return b, err
}

func (s *Instrumented) Save(ctx context.Context, data []byte) error {
	start := time.Now()
	err := s.next.Save(ctx, data)
	s.metrics.ObserveStore(s.driver, "save", result(err), time.Since(start))
	return err
}

func (s *Instrumented) Close() error { return s.next.Close() }

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, storage.ErrNoDocument):
		return "missing"
	default:
		return "error"
	}
}
