// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/okian/splitboard/internal/domain/display"
	"github.com/okian/splitboard/internal/domain/model"
)

// SplitsDependencies defines the interface for the drill-down lookup.
type SplitsDependencies interface {
	Detail(ctx context.Context, classKey, name string) (model.Detail, error)
}

// SplitsHandler handles competitor splits-sheet requests.
type SplitsHandler struct {
	deps SplitsDependencies
}

// NewSplitsHandler creates a new splits handler.
func NewSplitsHandler(deps SplitsDependencies) *SplitsHandler {
	return &SplitsHandler{deps: deps}
}

type legRow struct {
	Control    string `json:"control"`
	Split      string `json:"split"`
	Cumulative string `json:"cumulative"`
}

type splitsResponse struct {
	display.Row

	Class        string   `json:"class"`
	ControlCard  string   `json:"control_card"`
	CourseLength *int     `json:"course_length_m"`
	Controls     *int     `json:"controls"`
	Runners      int      `json:"runners"`
	PacePerKM    string   `json:"pace_per_km"`
	Legs         []legRow `json:"legs"`
}

// HandleGetSplits handles GET /splits/{class}/{name} requests.
func (h *SplitsHandler) HandleGetSplits(w http.ResponseWriter, r *http.Request) {
	classKey := chi.URLParam(r, "class")
	// Competitor names carry spaces, which arrive percent-encoded.
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if classKey == "" || name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	detail, err := h.deps.Detail(r.Context(), classKey, name)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	legs := make([]legRow, 0, len(detail.Legs))
	for _, leg := range detail.Legs {
		legs = append(legs, legRow{
			Control:    leg.Control,
			Split:      display.FormatSeconds(leg.Split),
			Cumulative: display.FormatSeconds(leg.Cumulative),
		})
	}

	writeJSON(w, http.StatusOK, splitsResponse{
		Row:          display.SummaryRow(detail.Summary),
		Class:        classKey,
		ControlCard:  detail.ControlCard,
		CourseLength: optIntPtr(detail.CourseLength),
		Controls:     optIntPtr(detail.Controls),
		Runners:      detail.Runners,
		PacePerKM:    paceString(detail.Pace),
		Legs:         legs,
	})
}

// paceString renders pace the way the printed sheets do: "n/a" when the
// course length is unknown.
func paceString(pace model.OptInt) string {
	if !pace.Valid {
		return "n/a"
	}
	return display.FormatSeconds(pace)
}

func optIntPtr(v model.OptInt) *int {
	if !v.Valid {
		return nil
	}
	return &v.Value
}
