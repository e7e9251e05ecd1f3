package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultPeopleAPIURL is the base URL of the people-search provider.
const DefaultPeopleAPIURL = "https://api.apollo.io/v1"

// ApolloClient implements PeopleSearcher over the Apollo REST API.
type ApolloClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewApolloClient creates a people-search client.
func NewApolloClient(apiKey string) *ApolloClient {
	return &ApolloClient{
		apiKey:  apiKey,
		baseURL: DefaultPeopleAPIURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// apolloPerson is the provider's wire representation of a person.
type apolloPerson struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	LinkedInURL  string `json:"linkedin_url"`
	PhoneNumbers []struct {
		RawNumber string `json:"raw_number"`
	} `json:"phone_numbers"`
}

// SearchPeople queries the provider for people at an organization matching
// the given titles.
func (a *ApolloClient) SearchPeople(ctx context.Context, q PeopleQuery) ([]Person, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 10
	}

	payload := map[string]any{
		"api_key":                a.apiKey,
		"q_organization_domains": []string{q.Domain},
		"person_titles":          q.Titles,
		"page":                   page,
		"per_page":               perPage,
	}

	var resp struct {
		People []apolloPerson `json:"people"`
	}
	if err := a.post(ctx, "/mixed_people/search", payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	people := make([]Person, 0, len(resp.People))
	for _, p := range resp.People {
		person := Person{
			Name:        p.Name,
			Title:       p.Title,
			Email:       p.Email,
			LinkedInURL: p.LinkedInURL,
		}
		for _, n := range p.PhoneNumbers {
			person.PhoneNumbers = append(person.PhoneNumbers, n.RawNumber)
		}
		people = append(people, person)
	}
	return people, nil
}

// VerifyEmail checks email deliverability. Any provider error defaults to
// false; verification never aborts a run.
func (a *ApolloClient) VerifyEmail(ctx context.Context, email string) bool {
	payload := map[string]any{
		"api_key": a.apiKey,
		"email":   email,
	}

	var resp struct {
		EmailStatus string `json:"email_status"`
	}
	if err := a.post(ctx, "/email_status", payload, &resp); err != nil {
		log.Printf("Email verification error for %s: %v", email, err)
		return false
	}

	return resp.EmailStatus == "verified" || resp.EmailStatus == "valid"
}

func (a *ApolloClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status %d: %s", resp.StatusCode, truncateBody(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func truncateBody(data []byte) string {
	const max = 200
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
