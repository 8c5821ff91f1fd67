// Package server exposes field extraction over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/document"
)

// extractorInterface defines the methods needed by the server from the
// document extractor.
type extractorInterface interface {
	Extract(docType document.Type, c *corpus.Corpus) (*document.Result, error)
	ExtractPerPage(docType document.Type, c *corpus.Corpus) (*document.Result, error)
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	extractor  extractorInterface
	corsOrigin string
	maxBodyKB  int64
	timeoutSec int
}

// Config holds server configuration.
type Config struct {
	Host       string
	Port       int
	CORSOrigin string
	MaxBodyKB  int64
	TimeoutSec int
	Extractor  *document.Extractor
}

// ExtractRequest is the JSON body accepted by the extract endpoint.
// Exactly one text source applies, checked in order: a raw OCR service
// response body, per-page texts, or a single text blob.
type ExtractRequest struct {
	Document        string          `json:"document"`
	Text            string          `json:"text,omitempty"`
	Pages           []string        `json:"pages,omitempty"`
	ServiceResponse json.RawMessage `json:"service_response,omitempty"`
}

// ExtractResponse is the JSON body produced by the extract endpoint.
type ExtractResponse struct {
	Success bool             `json:"success"`
	Result  *document.Result `json:"result,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// HealthResponse reports server health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// NewServer creates a new extraction server instance.
func NewServer(config Config) (*Server, error) {
	if config.Extractor == nil {
		return nil, errors.New("server requires an extractor")
	}
	return &Server{
		extractor:  config.Extractor,
		corsOrigin: config.CORSOrigin,
		maxBodyKB:  config.MaxBodyKB,
		timeoutSec: config.TimeoutSec,
	}, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/extract", s.corsMiddleware(s.extractHandler))
	mux.HandleFunc("/ws/extract", s.extractWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}
