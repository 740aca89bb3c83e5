package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/speedwagon-io/condmon/internal/config"
	"github.com/speedwagon-io/condmon/internal/diagnose"
	"github.com/speedwagon-io/condmon/internal/lib/logger/sl"
	"github.com/speedwagon-io/condmon/internal/metrics"
	"github.com/speedwagon-io/condmon/internal/store"
)

// Server is the HTTP surface of the service: inspection submission, report
// retrieval, asset registry lookup and the health/metrics endpoints.
type Server struct {
	log      *slog.Logger
	cfg      *config.HTTPConfig
	engine   *diagnose.Engine
	store    store.Store
	assets   *config.AssetsConfig
	server   *http.Server
	checkers []HealthChecker
}

func NewServer(
	log *slog.Logger,
	cfg *config.HTTPConfig,
	engine *diagnose.Engine,
	st store.Store,
	assets *config.AssetsConfig,
) *Server {
	return &Server{
		log:    log,
		cfg:    cfg,
		engine: engine,
		store:  st,
		assets: assets,
	}
}

// AddChecker registers a component health checker. Call before Start.
func (s *Server) AddChecker(checker HealthChecker) {
	s.checkers = append(s.checkers, checker)
}

// Handler builds the chi router. Exposed for tests; Start uses it too.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(s.log, func(req *http.Request) bool {
		return req.URL.Path == "/live" || req.URL.Path == "/ready"
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/inspections", s.handleCreateInspection)
		r.Get("/reports/{id}", s.handleGetReport)
		r.Get("/reports", s.handleListReports)
		r.Get("/assets", s.handleListAssets)
		r.Get("/assets/{tag}", s.handleGetAsset)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Get("/live", s.handleLive)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.log.Info("starting http server", slog.String("address", s.cfg.Address))

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("http server error", sl.Err(err))
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
