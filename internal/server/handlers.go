package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/runway-dev/runway/internal/export"
	"github.com/runway-dev/runway/internal/projector"
	"github.com/runway-dev/runway/internal/scenario"
)

type errorResponse struct {
	Error    string                       `json:"error"`
	Problems []projector.ValidationError `json:"problems,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenario.Sample())
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var doc scenario.Document
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "decoding scenario: "+err.Error(), nil)
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "decoding scenario: unexpected data after the scenario object", nil)
		return
	}

	p, err := projector.Project(doc.Input())
	if err != nil {
		var invalid *projector.InvalidScenarioError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusUnprocessableEntity, "invalid scenario", invalid.Problems)
			return
		}
		s.logger.Error("projection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "projection failed", nil)
		return
	}

	s.logger.Debug("projected scenario", "title", doc.Title, "days", p.Len())
	writeJSON(w, http.StatusOK, export.NewReport(doc.Title, doc.StartingBalance, p))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, problems []projector.ValidationError) {
	writeJSON(w, status, errorResponse{Error: msg, Problems: problems})
}
