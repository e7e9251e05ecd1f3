package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apolloServer(t *testing.T, handler http.HandlerFunc) *ApolloClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewApolloClient("test-key")
	client.baseURL = srv.URL
	return client
}

func TestSearchPeople_MapsWireFormat(t *testing.T) {
	var gotPayload map[string]any
	client := apolloServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mixed_people/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		_, _ = w.Write([]byte(`{
			"people": [
				{
					"name": "Sarah Mitchell",
					"title": "VP of Sales",
					"email": "smitchell@acme.com",
					"linkedin_url": "https://linkedin.com/in/smitchell",
					"phone_numbers": [{"raw_number": "+1 212 555 0100"}]
				},
				{"name": "Michael Chen", "title": "CRO"}
			]
		}`))
	})

	people, err := client.SearchPeople(context.Background(), PeopleQuery{
		Domain:  "acme.com",
		Titles:  []string{"VP of Sales"},
		PerPage: 5,
	})

	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Sarah Mitchell", people[0].Name)
	assert.Equal(t, "smitchell@acme.com", people[0].Email)
	assert.Equal(t, []string{"+1 212 555 0100"}, people[0].PhoneNumbers)
	assert.Empty(t, people[1].PhoneNumbers)

	assert.Equal(t, "test-key", gotPayload["api_key"])
	assert.Equal(t, []any{"acme.com"}, gotPayload["q_organization_domains"])
	assert.Equal(t, float64(1), gotPayload["page"])
	assert.Equal(t, float64(5), gotPayload["per_page"])
}

func TestSearchPeople_DefaultsPageAndPerPage(t *testing.T) {
	var gotPayload map[string]any
	client := apolloServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"people": []}`))
	})

	_, err := client.SearchPeople(context.Background(), PeopleQuery{Domain: "acme.com"})

	require.NoError(t, err)
	assert.Equal(t, float64(1), gotPayload["page"])
	assert.Equal(t, float64(10), gotPayload["per_page"])
}

func TestSearchPeople_NonOKStatus(t *testing.T) {
	client := apolloServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.SearchPeople(context.Background(), PeopleQuery{Domain: "acme.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestVerifyEmail(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"verified", true},
		{"valid", true},
		{"invalid", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			client := apolloServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/email_status", r.URL.Path)
				_, _ = w.Write([]byte(`{"email_status": "` + tt.status + `"}`))
			})

			assert.Equal(t, tt.want, client.VerifyEmail(context.Background(), "x@acme.com"))
		})
	}
}

func TestVerifyEmail_ProviderErrorReturnsFalse(t *testing.T) {
	client := apolloServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	})

	assert.False(t, client.VerifyEmail(context.Background(), "x@acme.com"))
}
