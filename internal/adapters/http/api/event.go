// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/splitboard/internal/domain/display"
	"github.com/okian/splitboard/internal/domain/model"
)

// EventDependencies defines the interface for event metadata.
type EventDependencies interface {
	Event(ctx context.Context) model.Event
}

// EventHandler handles event metadata requests.
type EventHandler struct {
	deps EventDependencies
}

// NewEventHandler creates a new event handler.
func NewEventHandler(deps EventDependencies) *EventHandler {
	return &EventHandler{deps: deps}
}

type eventResponse struct {
	EventName string `json:"event_name"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Classes   int    `json:"classes"`
}

// HandleGetEvent handles GET /event requests.
func (h *EventHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	ev := h.deps.Event(r.Context())
	writeJSON(w, http.StatusOK, eventResponse{
		EventName: ev.Name,
		Timestamp: ev.Timestamp,
		Date:      display.DateOnly(ev.Timestamp),
		Classes:   len(ev.Classes),
	})
}
