// Package api exposes a read-only HTTP surface over a running telemetry
// pipeline: the catalogue, the latest decoded record per type, and
// Prometheus metrics.
package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Bind string
	Port int
}

// Server serves the telemetry API. Feed it decoded records with Observe;
// handlers only ever read.
type Server struct {
	reg     *catalog.Registry
	metrics *Metrics
	logger  *zap.Logger

	mu     sync.RWMutex
	latest map[codec.FourCC]*codec.Record
}

// NewServer creates a server over a fully built registry.
func NewServer(reg *catalog.Registry, metrics *Metrics, logger *zap.Logger) *Server {
	return &Server{
		reg:     reg,
		metrics: metrics,
		logger:  logger,
		latest:  make(map[codec.FourCC]*codec.Record),
	}
}

// Observe records the newest decoded record for its type and counts it.
// Safe for concurrent use with the handlers.
func (s *Server) Observe(rec *codec.Record) {
	known := false
	name := rec.FourCC.String()
	if mt, ok := s.reg.Lookup(rec.FourCC); ok {
		known = true
		name = mt.Name
	}
	s.metrics.RecordFrame(name, known)

	s.mu.Lock()
	s.latest[rec.FourCC] = rec
	s.mu.Unlock()
}

// Router builds the chi router with all routes configured.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/types", s.handleListTypes)
		r.Get("/types/{fourcc}", s.handleGetType)
		r.Get("/records/latest", s.handleLatestRecords)
		r.Get("/records/latest/{fourcc}", s.handleLatestRecord)
	})

	return r
}

// Start runs the HTTP server until it fails. It blocks.
func (s *Server) Start(config ServerConfig) error {
	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	s.logger.Info("telemetry api listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Router())
}
