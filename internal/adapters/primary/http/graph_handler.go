package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/errors"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
	"github.com/qkitzero/github-contribution-growth-graph/internal/infrastructure/logging"
)

// queryDateLayout is the calendar-date format of the from/to parameters.
const queryDateLayout = "2006-01-02"

// GraphHandler handles HTTP requests for rendered graphs
type GraphHandler struct {
	graphService ports.GraphService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(graphService ports.GraphService, errorHandler *ErrorHandler, logger *slog.Logger) *GraphHandler {
	return &GraphHandler{
		graphService: graphService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "graph"),
	}
}

// RegisterRoutes sets up the routing for all graph endpoints.
func (h *GraphHandler) RegisterRoutes(r chi.Router) {
	r.Get("/contributions", h.HandleContributionsGraph)
	r.Get("/languages", h.HandleLanguagesGraph)
}

// HandleContributionsGraph renders the cumulative contribution graph
// GET /graphs/contributions?user=&from=&to=&theme=&size=&types=
func (h *GraphHandler) HandleContributionsGraph(w http.ResponseWriter, r *http.Request) {
	params, err := parseGraphParams(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	ctx := logging.WithLogin(r.Context(), params.Login)
	image, err := h.graphService.ContributionsGraph(ctx, params)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	writeImage(w, image)
}

// HandleLanguagesGraph renders the cumulative language size graph
// GET /graphs/languages?user=&from=&to=&theme=&size=
func (h *GraphHandler) HandleLanguagesGraph(w http.ResponseWriter, r *http.Request) {
	params, err := parseGraphParams(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	ctx := logging.WithLogin(r.Context(), params.Login)
	image, err := h.graphService.LanguagesGraph(ctx, params)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	writeImage(w, image)
}

// parseGraphParams extracts and validates the shared graph query parameters.
func parseGraphParams(r *http.Request) (ports.GraphParams, error) {
	query := r.URL.Query()

	login := strings.TrimSpace(query.Get("user"))
	if login == "" {
		return ports.GraphParams{}, errors.ErrUserRequired
	}

	params := ports.GraphParams{
		Login: login,
		Theme: query.Get("theme"),
		Size:  query.Get("size"),
	}

	from, err := parseQueryDate(query.Get("from"))
	if err != nil {
		return ports.GraphParams{}, err
	}
	params.From = from

	to, err := parseQueryDate(query.Get("to"))
	if err != nil {
		return ports.GraphParams{}, err
	}
	params.To = to

	if types := query.Get("types"); types != "" {
		for _, token := range strings.Split(types, ",") {
			if trimmed := strings.TrimSpace(token); trimmed != "" {
				params.Types = append(params.Types, trimmed)
			}
		}
	}

	return params, nil
}

// parseQueryDate parses an optional YYYY-MM-DD query value as a UTC instant.
func parseQueryDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(queryDateLayout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidDate, value)
	}
	return &t, nil
}

// writeImage writes a rendered PNG response.
func writeImage(w http.ResponseWriter, image []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}
