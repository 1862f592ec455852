package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pos-versions-dashboard/internal/report"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type dashboard interface {
	Render(ctx context.Context, f report.Filter) (report.View, error)
	Sidebar(ctx context.Context, version string) (report.Sidebar, error)
	Reload(ctx context.Context) error
}

type API struct {
	Dashboard dashboard
}

type Config struct {
	Dashboard dashboard
}

func New(cfg Config) *API {
	return &API{Dashboard: cfg.Dashboard}
}

func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", a.GetReport)
		r.Get("/filters", a.GetFilters)
		r.Post("/reload", a.Reload)
	})
	return r
}

// GetReport reads ?version=&pos=&pos=&pinpad=&model= and returns the view.
func (a *API) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pinpad, err := parseToggle(q.Get("pinpad"))
	if err != nil {
		writeError(w, "invalid pinpad toggle", http.StatusBadRequest)
		return
	}

	var ids []string
	for _, id := range q["pos"] {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	view, err := a.Dashboard.Render(r.Context(), report.Filter{
		Version:           strings.TrimSpace(q.Get("version")),
		DeviceIDs:         ids,
		ShowPinpadRanking: pinpad,
		POSModel:          strings.TrimSpace(q.Get("model")),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Error rendering report", "error", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, GetReportResponse(view))
}

func (a *API) GetFilters(w http.ResponseWriter, r *http.Request) {
	sidebar, err := a.Dashboard.Sidebar(r.Context(), strings.TrimSpace(r.URL.Query().Get("version")))
	if err != nil {
		slog.ErrorContext(r.Context(), "Error building filters", "error", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, GetFiltersResponse(sidebar))
}

func (a *API) Reload(w http.ResponseWriter, r *http.Request) {
	if err := a.Dashboard.Reload(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Error reloading dataset", "error", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseToggle accepts the sidebar's Sim/Não labels as well as booleans.
func parseToggle(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return false, nil
	case "sim":
		return true, nil
	case "não", "nao":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
