// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/splitboard/internal/domain/display"
	"github.com/okian/splitboard/internal/domain/model"
)

// ClassDependencies defines the interface for class listing operations.
type ClassDependencies interface {
	Classes(ctx context.Context) []model.Class
	Class(ctx context.Context, key string) (model.Class, error)
}

// ClassesHandler handles class listing requests.
type ClassesHandler struct {
	deps ClassDependencies
}

// NewClassesHandler creates a new classes handler.
func NewClassesHandler(deps ClassDependencies) *ClassesHandler {
	return &ClassesHandler{deps: deps}
}

type classSummary struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Runners int    `json:"runners"`
}

type classResponse struct {
	Key     string        `json:"key"`
	Name    string        `json:"name"`
	Results []display.Row `json:"results"`
}

// HandleListClasses handles GET /classes requests. Classes come back in
// document order, the way the feed ranked them.
func (h *ClassesHandler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes := h.deps.Classes(r.Context())
	out := make([]classSummary, 0, len(classes))
	for _, c := range classes {
		out = append(out, classSummary{Key: c.Key(), Name: c.Name, Runners: len(c.Results)})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetClass handles GET /classes/{class} requests, rendering the
// class's result rows with the status display policy applied.
func (h *ClassesHandler) HandleGetClass(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "class")
	if key == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	class, err := h.deps.Class(r.Context(), key)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	rows := make([]display.Row, 0, len(class.Results))
	for _, s := range class.Results {
		rows = append(rows, display.SummaryRow(s))
	}
	writeJSON(w, http.StatusOK, classResponse{Key: class.Key(), Name: class.Name, Results: rows})
}
