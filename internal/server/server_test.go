package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/prospect-researcher/internal/pipeline"
	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

func testServer() *Server {
	deps := pipeline.Deps{
		Scraper:   providers.NewSimulatedScraper(),
		Searcher:  providers.NewSimulatedSearcher(),
		People:    providers.NewSimulatedPeopleSearcher(),
		Generator: providers.NewSimulatedTextGenerator(),
	}
	return New(Config{
		Port:     "8080",
		Pipeline: pipeline.New(deps, pipeline.Options{}),
	})
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestResearch_InvalidJSONBody(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/research", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "invalid request body", apiErr.Error)
}

func TestResearch_MissingCompanyURL(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/research", `{"what_we_sell":"deal tracking"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "company_url is required and must be a string", apiErr.Error)
}

func TestResearch_MalformedURL(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/research", `{"company_url":"not a url"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var apiErr types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "Invalid URL format", apiErr.Error)
}

func TestResearch_FullRunReturnsResult(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/research",
		`{"company_url":"https://greystone.com","what_we_sell":"CRE deal management software"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result types.ResearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "Greystone", result.Company.Name)
	assert.True(t, result.ICPFit.Fit)
	assert.NotEmpty(t, result.Contacts)
	assert.Len(t, result.Messaging.EmailHooks, 10)
}

func TestResearch_MethodNotAllowed(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/research", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodOptions, "/research", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid input maps to 400",
			err:  &pipeline.InvalidInputError{Message: "bad url"},
			want: http.StatusBadRequest,
		},
		{
			name: "upstream failure maps to 502",
			err:  &pipeline.UpstreamError{Stage: "company profiling", Err: errors.New("timeout")},
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped upstream failure maps to 502",
			err:  fmt.Errorf("run failed: %w", &pipeline.UpstreamError{Stage: "company profiling", Err: errors.New("timeout")}),
			want: http.StatusBadGateway,
		},
		{
			name: "unknown errors map to 500",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
