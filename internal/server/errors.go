package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/prospect-researcher/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalid *pipeline.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var upstream *pipeline.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
