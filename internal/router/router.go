package router

import (
	"net/http"

	"crud-tank/docs"
	"crud-tank/internal/adapters/storage/docstore"
	"crud-tank/internal/adapters/storage/jsondoc"
	mem "crud-tank/internal/adapters/storage/memory"
	"crud-tank/internal/domain/fish"
	"crud-tank/internal/middleware"
	"crud-tank/internal/platform/logger"
	"crud-tank/internal/platform/metrics"
	"crud-tank/internal/ports/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const devFlashSecret = "crud-tank-dev-secret"

type Options struct {
	// Opcional: si no viene, el dataset vive en memoria (modo dev / tests).
	Store  storage.DocumentStore
	Driver storage.Driver

	Logger  logger.Logger    // nil => no loguea
	Metrics *metrics.Metrics // nil => se crea uno propio

	FlashSecret string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	secret := opts.FlashSecret
	if secret == "" {
		secret = devFlashSecret
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log, m))
	r.Use(chimw.Recoverer)
	r.Use(middleware.FlashContext(secret))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	st, driver := opts.Store, opts.Driver
	if st == nil {
		st, driver = mem.NewDocumentStore(), storage.DriverMemory
	}
	if driver == "" {
		driver = "custom"
	}

	fishRepo := jsondoc.NewFishRepo(docstore.Instrument(st, driver, m), log)
	fishSvc := fish.NewService(fishRepo)

	fish.RegisterRoutes(r, fishSvc, log)
	fish.RegisterAPIRoutes(r, fishSvc, log)

	return r
}
