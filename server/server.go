// Package server exposes the page pipeline over HTTP so storefront
// provisioning jobs can trigger runs without shelling out to the CLI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront_copywriter/catalog"
	"storefront_copywriter/config"
	"storefront_copywriter/pipeline"
)

// runTimeout bounds one full page run; a page is dozens of sequential
// model calls, so this is generous on purpose.
const runTimeout = 10 * time.Minute

type Server struct {
	runner *pipeline.Runner
	cfg    config.Config
	log    *zap.SugaredLogger
}

func New(runner *pipeline.Runner, cfg config.Config, log *zap.SugaredLogger) (*Server, error) {
	if runner == nil {
		return nil, errors.New("pipeline runner required")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{runner: runner, cfg: cfg, log: log}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pages/", s.handlePageRun)
	return s.logMiddleware(mux)
}

type runRequest struct {
	Brand              string `json:"brand"`
	ProductTitle       string `json:"product_title"`
	ProductDescription string `json:"product_description"`
	Language           string `json:"language"`
}

type runResponse struct {
	Page   string `json:"page"`
	Status string `json:"status"`
}

// POST /api/pages/{page}/run
func (s *Server) handlePageRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/pages/")
	name = strings.TrimSuffix(name, "/run")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Brand == "" || req.ProductTitle == "" || req.Language == "" {
		http.Error(w, "brand, product_title, and language are required", http.StatusBadRequest)
		return
	}

	page, err := catalog.ByName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	path, err := s.cfg.Pages.PathFor(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), runTimeout)
	defer cancel()

	if err := s.runner.Run(ctx, page, path, catalog.Request{
		Brand:              req.Brand,
		ProductTitle:       req.ProductTitle,
		ProductDescription: req.ProductDescription,
		Language:           req.Language,
	}); err != nil {
		s.log.Errorw("page run failed", "page", name, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, runResponse{Page: name, Status: "completed"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Infow("http request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
