package types

import (
	"github.com/go-playground/validator/v10"
)

// ResearchRequest represents the research API request body.
type ResearchRequest struct {
	CompanyURL    string `json:"company_url" validate:"required,url"`
	WhatWeSell    string `json:"what_we_sell,omitempty"`
	TargetPersona string `json:"target_persona,omitempty"`
	Region        string `json:"region,omitempty"`
}

// Validate validates the ResearchRequest using the validator.
func (r *ResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// APIError represents an error response body.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
