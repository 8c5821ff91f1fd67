package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/document"
	"github.com/gulftech/idparse/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// extractHandler processes extraction requests.
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Set content length limit
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyKB*1024)
	if r.ContentLength > 0 {
		requestBodyBytes.Observe(float64(r.ContentLength))
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeErrorResponse(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	docType, c, status, err := s.resolveRequest(req)
	if err != nil {
		extractRequestsTotal.WithLabelValues(req.Document, "error").Inc()
		s.writeErrorResponse(w, err.Error(), status)
		return
	}

	start := time.Now()
	res, err := s.extractor.ExtractPerPage(docType, c)
	duration := time.Since(start)

	if err != nil {
		extractRequestsTotal.WithLabelValues(string(docType), "error").Inc()
		s.writeErrorResponse(w, fmt.Sprintf("Extraction failed: %v", err), http.StatusInternalServerError)
		return
	}

	// Record metrics
	extractRequestsTotal.WithLabelValues(string(docType), "success").Inc()
	extractDuration.WithLabelValues(string(docType)).Observe(duration.Seconds())
	fieldsResolved.WithLabelValues(string(docType)).Observe(float64(len(res.Fields)))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ExtractResponse{Success: true, Result: res}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding extract response: %v\n", err)
	}
}

// resolveRequest validates the request and builds the corpus from
// whichever text source it carries.
func (s *Server) resolveRequest(req ExtractRequest) (document.Type, *corpus.Corpus, int, error) {
	if req.Document == "" {
		req.Document = string(document.TypeID)
	}
	docType, err := document.ParseType(req.Document)
	if err != nil {
		return "", nil, http.StatusBadRequest, err
	}

	switch {
	case len(req.ServiceResponse) > 0:
		c, err := corpus.FromServiceJSON(req.ServiceResponse)
		if err != nil {
			// Upstream OCR failures are the collaborator's fault, not
			// the caller's.
			return "", nil, http.StatusBadGateway, err
		}
		return docType, c, 0, nil
	case len(req.Pages) > 0:
		return docType, corpus.New(req.Pages...), 0, nil
	case req.Text != "":
		return docType, corpus.New(req.Text), 0, nil
	default:
		return "", nil, http.StatusBadRequest, errors.New("no text provided: set text, pages, or service_response")
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ExtractResponse{
		Success: false,
		Error:   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error, but can't send another response
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
