// Package site serves the server-rendered results board page.
package site

import (
	"context"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/okian/splitboard/internal/domain/display"
	"github.com/okian/splitboard/internal/domain/model"
	"github.com/okian/splitboard/pkg/logger"
)

// Dependencies is the read surface the board page needs. The page only
// ever consumes plain display data; it never touches the raw document.
type Dependencies interface {
	Event(ctx context.Context) model.Event
	Classes(ctx context.Context) []model.Class
}

// Handler renders the board.
type Handler struct {
	deps Dependencies
	tmpl *template.Template
}

// NewHandler parses the embedded template and returns the handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		deps: deps,
		tmpl: template.Must(template.ParseFS(templateFS, "templates/board.gohtml")),
	}
}

// Register attaches the board route to the router.
func Register(_ context.Context, r chi.Router, deps Dependencies) {
	h := NewHandler(deps)
	r.Get("/", h.HandleBoard)
}

type boardRow struct {
	display.Row

	SplitsHref string
}

type boardClass struct {
	Key  string
	Name string
	Rows []boardRow
}

type boardData struct {
	EventName string
	Date      string
	Classes   []boardClass
}

// HandleBoard handles GET / requests.
func (h *Handler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	ev := h.deps.Event(r.Context())

	data := boardData{
		EventName: ev.Name,
		Date:      display.DateOnly(ev.Timestamp),
	}
	for _, c := range ev.Classes {
		bc := boardClass{Key: c.Key(), Name: c.Name}
		for _, s := range c.Results {
			bc.Rows = append(bc.Rows, boardRow{
				Row:        display.SummaryRow(s),
				SplitsHref: "/splits/" + url.PathEscape(c.Key()) + "/" + url.PathEscape(s.Name),
			})
		}
		data.Classes = append(data.Classes, bc)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		logger.Get().Error(r.Context(), "board render failed", logger.Error(err))
	}
}
