// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/splitboard/internal/app"
	"github.com/okian/splitboard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Read operations over the current board.
	Event(ctx context.Context) model.Event
	Classes(ctx context.Context) []model.Class
	Class(ctx context.Context, key string) (model.Class, error)
	Detail(ctx context.Context, classKey, name string) (model.Detail, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	eventHandler  *EventHandler
	classHandler  *ClassesHandler
	splitsHandler *SplitsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		eventHandler:  NewEventHandler(deps),
		classHandler:  NewClassesHandler(deps),
		splitsHandler: NewSplitsHandler(deps),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Get("/event", MetricsMiddleware(s.eventHandler.HandleGetEvent, "event"))
	r.Get("/classes", MetricsMiddleware(s.classHandler.HandleListClasses, "classes"))
	r.Get("/classes/{class}", MetricsMiddleware(s.classHandler.HandleGetClass, "class"))
	r.Get("/splits/{class}/{name}", MetricsMiddleware(s.splitsHandler.HandleGetSplits, "splits"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates the service's lookup sentinel to a 404.
func isNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound)
}
