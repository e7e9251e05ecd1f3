package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/prospect-researcher/internal/types"
)

// handleResearch runs the full research pipeline for one company URL.
func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req types.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.CompanyURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "company_url is required and must be a string", "")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid URL format", err.Error())
		return
	}

	result, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		log.Printf("Research error: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to complete research", err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message, details string) {
	s.jsonResponse(w, status, types.APIError{Error: message, Details: details})
}
