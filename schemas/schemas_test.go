package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/prospect-researcher/internal/types"
)

func loadSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(".", "research_result.schema.json"))
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestResearchResultSchema_ValidJSON(t *testing.T) {
	raw := loadSchema(t)

	var v interface{}
	err := json.Unmarshal([]byte(raw), &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func validate(t *testing.T, result types.ResearchResult) *gojsonschema.Result {
	t.Helper()
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(loadSchema(t)),
		gojsonschema.NewBytesLoader(payload),
	)
	require.NoError(t, err)
	return res
}

func TestResearchResultSchema_FullResult(t *testing.T) {
	result := types.ResearchResult{
		RunID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Company: types.CompanyProfile{
			Name:         "Acme",
			URL:          "https://acme.com",
			Summary:      "Acme builds developer tooling.",
			Industry:     "Technology",
			SizeEstimate: "200-1000 employees",
			Evidence:     []string{"https://acme.com"},
		},
		Initiatives: []types.Initiative{
			{Title: "Acme raises Series B", WhyItMatters: "Recent funding means budget for new tools and pressure to grow", SourceURL: "https://news.example.com/acme"},
		},
		TechStack: []types.TechSignal{
			{Tech: "React", Confidence: types.ConfidenceHigh, SourceURL: "https://acme.com"},
		},
		HiringSignals: []types.HiringSignal{
			{Role: "VP of Sales", Signal: "Actively growing sales team - good timing for sales tools", SourceURL: "https://acme.com/careers"},
		},
		ICPFit: types.ICPVerdict{
			Fit:           true,
			Reasons:       []string{"Industry match: Technology"},
			Disqualifiers: []string{},
			Score:         90,
		},
		Personas: []types.Persona{
			{Persona: "VP of Sales / Chief Revenue Officer", Why: "Owns revenue targets and sales team productivity"},
		},
		Contacts: []types.Contact{
			{Name: "Jordan Smith", Title: "VP of Sales", LinkedInURL: "https://linkedin.com/in/jordansmith", Email: "jordan@acme.com", EmailVerified: true, Phone: "+1-555-0100"},
		},
		Messaging: types.Messaging{
			Emails: []types.EmailDraft{
				{Subject: "Acme raised funding", Body: "Hi Jordan,\n...", PersonalizationPoints: []string{"Initiative: Acme raises Series B"}},
			},
			CallScript: types.CallScript{
				Opener:             "Hi [Name], this is [Your Name] from [Company].",
				DiscoveryQuestions: []string{"Tell me about your current sales process"},
				Objections:         []string{`"We're not interested" -> "I understand."`},
			},
			EmailHooks: []string{"I saw that Acme recently raised funding."},
		},
	}

	res := validate(t, result)
	assert.True(t, res.Valid(), "full result should validate: %v", res.Errors())
}

func TestResearchResultSchema_ICPFailResult(t *testing.T) {
	// The early-exit shape: empty personas, contacts, and messaging.
	result := types.ResearchResult{
		Company: types.CompanyProfile{
			Name:         "State University",
			URL:          "https://stateu.edu",
			Summary:      "A public university.",
			Industry:     "Education",
			SizeEstimate: "5000+ employees",
			Evidence:     []string{"https://stateu.edu"},
		},
		Initiatives:   []types.Initiative{},
		TechStack:     []types.TechSignal{},
		HiringSignals: []types.HiringSignal{},
		ICPFit: types.ICPVerdict{
			Fit:           false,
			Reasons:       []string{},
			Disqualifiers: []string{"Matched disqualifier: education"},
			Score:         0,
		},
		Personas: []types.Persona{},
		Contacts: []types.Contact{},
		Messaging: types.Messaging{
			Emails: []types.EmailDraft{},
			CallScript: types.CallScript{
				Opener:             "",
				DiscoveryQuestions: []string{},
				Objections:         []string{},
			},
			EmailHooks: []string{},
		},
	}

	res := validate(t, result)
	assert.True(t, res.Valid(), "early-exit result should validate: %v", res.Errors())
}

func TestResearchResultSchema_RejectsBadConfidence(t *testing.T) {
	payload := `{
		"company": {"name": "X", "url": "https://x.com", "summary": "", "industry": "Technology", "size_estimate": "Unknown", "evidence": []},
		"initiatives": [],
		"tech_stack": [{"tech": "React", "confidence": "certain", "source_url": "https://x.com"}],
		"hiring_signals": [],
		"icp_fit": {"fit": false, "reasons": [], "disqualifiers": [], "score": 0},
		"personas": [],
		"contacts": [],
		"messaging": {"emails": [], "call_script": {"opener": "", "discovery_questions": [], "objections": []}, "email_hooks": []}
	}`

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(loadSchema(t)),
		gojsonschema.NewStringLoader(payload),
	)
	require.NoError(t, err)
	assert.False(t, res.Valid(), "unknown confidence value should fail validation")
}
