package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coursecraft/flowengine/internal/flow"
	"github.com/coursecraft/flowengine/internal/quizgen"
	"github.com/coursecraft/flowengine/internal/store"
)

// Server exposes the flow engine over HTTP.
type Server struct {
	Router *chi.Mux
	Port   int

	logger       *slog.Logger
	orchestrator *flow.Orchestrator
	graphs       GraphSource
	quizzes      quizgen.Generator
	events       store.EventRepo
}

// Options wires the server's collaborators. Quizzes and Events may be
// nil; the corresponding endpoints then answer 503.
type Options struct {
	Port         int
	Logger       *slog.Logger
	Orchestrator *flow.Orchestrator
	Graphs       GraphSource
	Quizzes      quizgen.Generator
	Events       store.EventRepo
}

// New assembles the router with the standard middleware chain.
func New(opts Options) *Server {
	s := &Server{
		Port:         opts.Port,
		logger:       opts.Logger,
		orchestrator: opts.Orchestrator,
		graphs:       opts.Graphs,
		quizzes:      opts.Quizzes,
		events:       opts.Events,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(s.logger))
	r.Use(TimeoutMiddleware(30 * time.Second))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/activities/{activityID}/classify", s.handleClassify)
		r.Post("/activities/{activityID}/phase", s.handlePhaseAdvance)
		r.Post("/activities/{activityID}/quiz", s.handleQuizGenerate)
		r.Get("/decisions", s.handleListDecisions)
		r.Get("/decisions/{decisionID}", s.handleGetDecision)
	})

	s.Router = r
	return s
}

// Start runs the HTTP server. It blocks until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("starting server", slog.Int("port", s.Port))
	return http.ListenAndServe(fmt.Sprintf(":%d", s.Port), s.Router)
}
