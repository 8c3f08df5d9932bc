// Package server exposes the label exporter over HTTP: a front-end posts a
// label document and gets the rendered PDF back.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/labelkit/labelkit/internal/config"
	"github.com/labelkit/labelkit/internal/units"
	"github.com/labelkit/labelkit/pkg/api"
)

// Server is the HTTP API server for the export daemon.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/api/templates", s.handleTemplates)
	r.Post("/api/export", s.handleExport)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"templates": api.Templates()})
}

// exportRequest is the POST /api/export body: the label document plus
// per-request layout overrides.
type exportRequest struct {
	api.Document
	Options exportOptions `json:"options"`
}

type exportOptions struct {
	Template         string  `json:"template"`
	Page             string  `json:"page"`
	SectionTitle     string  `json:"section_title"`
	Strapline        string  `json:"strapline"`
	MarginCm         float64 `json:"margin_cm"`
	TwoColumns       *bool   `json:"two_columns"`
	ExpandChildCodes bool    `json:"expand_child_codes"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	opts, err := s.exportOptions(req.Options)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := api.NewWithOptions(opts).ExportBytes(req.Document)
	if err != nil {
		s.log.Error("export failed", "error", err)
		jsonError(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="labels.pdf"`)
	w.Write(data)
}

// exportOptions merges the daemon defaults with the request overrides.
func (s *Server) exportOptions(in exportOptions) (api.Options, error) {
	opts := api.DefaultOptions()
	opts.Template = s.cfg.DefaultTemplate
	opts.AutoTwoColumns = s.cfg.AutoTwoColumns

	page := s.cfg.DefaultPage
	if in.Page != "" {
		page = in.Page
	}
	ps, ok := units.Lookup(page)
	if !ok {
		return opts, fmt.Errorf("unknown page size: %s", page)
	}
	opts.PageWidth, opts.PageHeight = ps.Width, ps.Height

	if in.Template != "" {
		opts.Template = in.Template
	}
	if in.SectionTitle != "" {
		opts.SectionTitle = in.SectionTitle
	}
	if in.Strapline != "" {
		opts.Strapline = in.Strapline
	}
	if in.MarginCm > 0 {
		opts.Margin = units.CmToPt(in.MarginCm)
	}
	if in.TwoColumns != nil {
		opts.AutoTwoColumns = *in.TwoColumns
	}
	opts.ExpandChildCodes = in.ExpandChildCodes
	return opts, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
