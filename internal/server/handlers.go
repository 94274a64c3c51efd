package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/f3rmion/intelliproject/internal/engine"
	"github.com/f3rmion/intelliproject/internal/project"
)

const internalErrorDetail = "An unexpected error occurred while generating recommendations."

type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     s.opts.AppName,
		"version": s.opts.Version,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req project.FormInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.ObserveRequest("", "bad_request", 0, time.Since(start))
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := s.generator.Generate(req)
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			s.metrics.ObserveRequest(string(req.Difficulty), "invalid", 0, time.Since(start))
			respondError(w, http.StatusUnprocessableEntity, ve.Error())
			return
		}
		slog.Error("failed to generate recommendations",
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		s.metrics.ObserveRequest(string(req.Difficulty), "error", 0, time.Since(start))
		respondError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}

	s.metrics.ObserveRequest(string(req.Difficulty), "success", len(resp.Recommendations), time.Since(start))
	respondJSON(w, http.StatusOK, resp)
}
