package router

import (
	"net/http"

	"wolfpack/internal/adapters/storage/memory"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/middleware"
	"wolfpack/internal/platform/logger"
	"wolfpack/internal/platform/metrics"
	"wolfpack/internal/ports/auth"
	"wolfpack/internal/server"

	_ "wolfpack/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Verifier auth.TokenVerifier // puede ser nil (modo dev, sin token)

	// Opcionales: si no vienen, se usa un store in-memory compartido.
	Wolves wolves.Store
	Packs  packs.Store

	Log logger.Logger

	// Registry para /metrics; si es nil se crea uno propio.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	if opts.Wolves == nil || opts.Packs == nil {
		db := memory.NewDB()
		opts.Wolves, opts.Packs = db.Wolves(), db.Packs()
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
	}
	apiMetrics := metrics.NewServer(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(opts.Log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	wolvesSvc := wolves.NewService(opts.Wolves)
	packsSvc := packs.NewService(opts.Packs, wolvesSvc)

	// Rutas de la API (con token si hay verifier)
	r.Group(func(api chi.Router) {
		api.Use(apiMetrics.Middleware)
		api.Use(middleware.RequireBearer(opts.Verifier))
		server.RegisterRoutes(api, wolvesSvc, packsSvc)
	})

	return r
}
