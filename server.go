package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"i4.energy/across/gsmquery/at"
	"i4.energy/across/gsmquery/modem"
)

// Server handles incoming HTTP requests for querying the configured modem
// session. Requests are run one at a time since a session serves a single
// caller.
type Server struct {
	Logger    *slog.Logger
	Session   *modem.Session
	Publisher Publisher

	mu sync.Mutex
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /fetch", s.handleFetch)
	mux.ServeHTTP(w, r)
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	resp := ErrorResponse{Message: message}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)

}

// handleFetch runs one command against the modem and reports the outcome
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	type FetchRequest struct {
		Command string `json:"command"`
		Pattern string `json:"pattern"`
		// Timeout is a duration string such as "5s"; the session default
		// applies when empty
		Timeout string `json:"timeout"`
	}

	var req FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Command == "" || req.Pattern == "" {
		s.sendError(w, "both 'command' and 'pattern' fields are required", http.StatusBadRequest)
		return
	}

	pattern, err := at.CompilePattern(req.Pattern)
	if err != nil {
		s.sendError(w, "invalid pattern: "+err.Error(), http.StatusBadRequest)
		return
	}

	var timeout time.Duration
	if req.Timeout != "" {
		if timeout, err = time.ParseDuration(req.Timeout); err != nil || timeout <= 0 {
			s.sendError(w, "invalid timeout: "+req.Timeout, http.StatusBadRequest)
			return
		}
	}

	id := uuid.NewString()
	logger := s.Logger.With("id", id)
	command := []byte(req.Command)

	s.mu.Lock()
	outcome, err := s.Session.Fetch(r.Context(), command, pattern, timeout)
	s.mu.Unlock()
	if err != nil {
		logger.Error("Failed to fetch", "error", err, "command", req.Command)
		s.sendError(w, err.Error(), http.StatusBadGateway)
		return
	}

	report := newReport(id, command, outcome)
	logger.Info("Fetch completed", "kind", report.Kind, "value", report.Value, "code", report.Code, "elapsed", outcome.Elapsed)

	if s.Publisher != nil {
		if err := s.Publisher.Publish(report); err != nil {
			logger.Warn("Failed to publish outcome", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}
