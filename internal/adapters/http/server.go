package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/api"
	"github.com/aretw0/espalier/internal/adapters/figma"
)

// Server exposes the Espalier service over REST.
type Server struct {
	service *espalier.Service
	logger  *slog.Logger
	version string
}

// NewHandler creates the HTTP handler for the service. The reported version
// comes from the embedded OpenAPI contract.
func NewHandler(service *espalier.Service, logger *slog.Logger) http.Handler {
	version := espalier.Version
	if doc, err := api.Load(); err == nil && doc.Info != nil {
		version = doc.Info.Version
	} else if err != nil {
		logger.Warn("failed to load embedded openapi spec", "err", err)
	}

	s := &Server{service: service, logger: logger, version: version}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/files/{fileKey}", s.getFile)
	r.Get("/files/{fileKey}/nodes/{nodeId}", s.getNode)
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func (s *Server) getFile(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")

	depth, ok := s.bindDepth(w, r)
	if !ok {
		return
	}

	design, err := s.service.FetchFile(r.Context(), fileKey, depth)
	if err != nil {
		s.writeUpstreamError(w, err)
		s.logger.Error("file fetch failed", "fileKey", fileKey, "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, design)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	nodeID := chi.URLParam(r, "nodeId")

	depth, ok := s.bindDepth(w, r)
	if !ok {
		return
	}

	design, err := s.service.FetchNodes(r.Context(), fileKey, []string{nodeID}, depth)
	if err != nil {
		s.writeUpstreamError(w, err)
		s.logger.Error("node fetch failed", "fileKey", fileKey, "nodeId", nodeID, "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, design)
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"name":    "espalier",
		"version": s.version,
	})
}

// bindDepth reads the optional depth query parameter. A malformed value is a
// client error, not a silent default.
func (s *Server) bindDepth(w http.ResponseWriter, r *http.Request) (int, bool) {
	if !r.URL.Query().Has("depth") {
		return 0, true
	}
	var depth int
	if err := runtime.BindQueryParameter("form", true, false, "depth", r.URL.Query(), &depth); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": fmt.Sprintf("invalid depth parameter: %v", err),
		})
		return 0, false
	}
	return depth, true
}

// writeUpstreamError maps API failures onto 502 with the upstream status
// attached, and everything else onto 500.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *figma.APIError
	if errors.As(err, &apiErr) {
		s.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":  apiErr.Message,
			"status": apiErr.Status,
		})
		return
	}
	s.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Espalier API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
