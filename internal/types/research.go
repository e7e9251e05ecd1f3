// Package types holds the shared data structures passed between the research
// pipeline stages and serialized in API responses.
package types

import "strings"

// CompanyProfile captures what the profiler learned about a company from its
// website and search results.
type CompanyProfile struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Summary      string   `json:"summary"`
	Industry     string   `json:"industry"`
	SizeEstimate string   `json:"size_estimate"`
	Evidence     []string `json:"evidence"`
}

// Initiative is a recent strategic move (funding, launch, partnership) with
// a sales-relevant rationale.
type Initiative struct {
	Title        string `json:"title"`
	WhyItMatters string `json:"why_it_matters"`
	SourceURL    string `json:"source_url"`
}

// Confidence grades how strongly a signal was detected.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TechSignal is one detected technology with its detection confidence.
type TechSignal struct {
	Tech       string     `json:"tech"`
	Confidence Confidence `json:"confidence"`
	SourceURL  string     `json:"source_url"`
}

// HiringSignal is an open role found on a careers page, classified into a
// sales-relevant interpretation.
type HiringSignal struct {
	Role      string `json:"role"`
	Signal    string `json:"signal"`
	SourceURL string `json:"source_url"`
}

// Persona is a buyer persona worth targeting at the company.
type Persona struct {
	Persona string `json:"persona"`
	Why     string `json:"why"`
}

// Contact is an enriched person at the target company.
type Contact struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	LinkedInURL   string `json:"linkedin_url"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Phone         string `json:"phone"`
}

// FirstName returns the leading word of the contact's name, or "there" when
// the name is empty, for use in greetings.
func (c Contact) FirstName() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

// EmailDraft is a ready-to-send outreach email with the research facts it
// leans on.
type EmailDraft struct {
	Subject               string   `json:"subject"`
	Body                  string   `json:"body"`
	PersonalizationPoints []string `json:"personalization_points"`
}

// CallScript is a cold-call script: opener, discovery questions, and
// objection handlers.
type CallScript struct {
	Opener             string   `json:"opener"`
	DiscoveryQuestions []string `json:"discovery_questions"`
	Objections         []string `json:"objections"`
}

// Messaging bundles the generated outreach assets.
type Messaging struct {
	Emails     []EmailDraft `json:"emails"`
	CallScript CallScript   `json:"call_script"`
	EmailHooks []string     `json:"email_hooks"`
}

// ResearchResult is the full sales-prep packet for one company.
type ResearchResult struct {
	RunID         string         `json:"run_id,omitempty"`
	Company       CompanyProfile `json:"company"`
	Initiatives   []Initiative   `json:"initiatives"`
	TechStack     []TechSignal   `json:"tech_stack"`
	HiringSignals []HiringSignal `json:"hiring_signals"`
	ICPFit        ICPVerdict     `json:"icp_fit"`
	Personas      []Persona      `json:"personas"`
	Contacts      []Contact      `json:"contacts"`
	Messaging     Messaging      `json:"messaging"`
}
