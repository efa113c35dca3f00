// Package web serves the tracker as a JSON API.
package web

import (
	"context"
	"net/http"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/config"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/metrics"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"
	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Tracker is the part of service.Tracker the handlers use.
type Tracker interface {
	SportOverview(ctx context.Context, sport models.Sport) (service.SportOverview, error)
	Standings(ctx context.Context, sport models.Sport) ([]models.StandingsModel, error)
	RecordResult(ctx context.Context, matchId uuid.UUID, status models.MatchStatus, homeScore, awayScore *int) (models.MatchModel, error)
	MatchAnalysis(ctx context.Context, matchId uuid.UUID) (service.MatchAnalysis, error)
	MatchChart(ctx context.Context, matchId uuid.UUID) (service.Chart, error)
}

type Server struct {
	server     config.ServerConfig
	metrics    config.MetricsConfig
	tracker    Tracker
	log        logrus.FieldLogger
	httpServer *http.Server
}

func NewServer(cfg *config.Config, tracker Tracker, log logrus.FieldLogger) *Server {
	return &Server{
		server:  cfg.Server,
		metrics: cfg.Metrics,
		tracker: tracker,
		log:     log,
	}
}

// Handler builds the routed, instrumented and CORS wrapped handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.instrument)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if s.metrics.Enabled {
		router.Handle(s.metrics.Path, metrics.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sports/{sport}", s.handleSportOverview).Methods(http.MethodGet)
	api.HandleFunc("/sports/{sport}/standings", s.handleStandings).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", s.handleMatchAnalysis).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}/stats", s.handleMatchStats).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}/result", s.handleRecordResult).Methods(http.MethodPut)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.server.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.server.ReadTimeout,
		WriteTimeout: s.server.WriteTimeout,
		IdleTimeout:  s.server.IdleTimeout,
	}
	s.log.WithField("addr", s.httpServer.Addr).Info("http server listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
