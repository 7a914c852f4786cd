package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/library"
	"github.com/go-chi/chi/v5"
)

// CalibrationStore is the read/write calibration access the API needs.
type CalibrationStore interface {
	calibration.Store
	PutCalibrationRecord(ctx context.Context, rec calibration.Record) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog *catalog.Snapshot
	planner *engine.Planner
	lib     *library.Service
	cal     CalibrationStore
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(cat *catalog.Snapshot, planner *engine.Planner, lib *library.Service, cal CalibrationStore, log *slog.Logger) *Server {
	s := &Server{
		catalog: cat,
		planner: planner,
		lib:     lib,
		cal:     cal,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions/generate", s.handleGenerateSession)

		r.Get("/exercises", s.handleListExercises)
		r.Get("/protocols", s.handleListProtocols)

		r.Route("/library/{userID}", func(r chi.Router) {
			r.Get("/", s.handleGetLibrary)
			r.Post("/exercises", s.handleAddExercises)
			r.Delete("/exercises/{exerciseID}", s.handleUnstarExercise)
			r.Put("/protocols", s.handleStarProtocol)
			r.Patch("/protocols/{protocolID}", s.handlePatchProtocol)
		})

		r.Put("/calibration/{userID}/{exerciseID}", s.handlePutCalibration)
	})
}
