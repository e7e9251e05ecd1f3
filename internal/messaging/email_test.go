package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/prospect-researcher/internal/types"
)

func testCompany() types.CompanyProfile {
	return types.CompanyProfile{
		Name:     "Acme",
		URL:      "https://acme.com",
		Industry: "Technology",
	}
}

func testContact(name, title string) types.Contact {
	return types.Contact{Name: name, Title: title, Email: "x@acme.com", EmailVerified: true}
}

func TestGenerateEmails_CapsAtThreeDrafts(t *testing.T) {
	contacts := []types.Contact{
		testContact("Alice Chen", "VP of Sales"),
		testContact("Bob Diaz", "CRO"),
		testContact("Cara Lee", "RevOps Manager"),
		testContact("Dana Fox", "Sales Enablement Manager"),
	}

	drafts := GenerateEmails(testCompany(), contacts, nil, nil, "")

	assert.Len(t, drafts, 3)
}

func TestGenerateEmails_InitiativeDrivesSubjectAndOpening(t *testing.T) {
	initiatives := []types.Initiative{{
		Title:        "Acme announces Series B funding round",
		WhyItMatters: "Fresh capital usually funds go-to-market expansion",
	}}

	drafts := GenerateEmails(testCompany(), []types.Contact{testContact("Alice Chen", "VP of Sales")}, initiatives, nil, "")

	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme raised funding", drafts[0].Subject)
	assert.Contains(t, drafts[0].Body, "Hi Alice,")
	assert.Contains(t, drafts[0].Body, "I saw that Acme recently raised funding.")
	assert.Contains(t, drafts[0].Body, "Fresh capital usually funds go-to-market expansion.")
	assert.Contains(t, drafts[0].PersonalizationPoints, "Initiative: Acme announces Series B funding round")
}

func TestGenerateEmails_HiringFallbackWhenNoInitiatives(t *testing.T) {
	signals := []types.HiringSignal{{
		Role:   "Enterprise Account Executive",
		Signal: "Building out enterprise sales",
	}}

	drafts := GenerateEmails(testCompany(), []types.Contact{testContact("Bob Diaz", "CRO")}, nil, signals, "")

	require.Len(t, drafts, 1)
	assert.Equal(t, "Quick question about Acme", drafts[0].Subject)
	assert.Contains(t, drafts[0].Body, "I noticed Acme is hiring for Enterprise Account Executive")
	assert.Contains(t, drafts[0].PersonalizationPoints, "Hiring: Enterprise Account Executive")
}

func TestGenerateEmails_IndustryFallbackWhenNoSignals(t *testing.T) {
	drafts := GenerateEmails(testCompany(), []types.Contact{testContact("Cara Lee", "Head of Product")}, nil, nil, "")

	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Body, "I've been following Acme's work in Technology.")
	assert.Contains(t, drafts[0].PersonalizationPoints, "Industry: Technology")
}

func TestGenerateEmails_TitleClause(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Head of Revenue Operations", "Given your ownership of revenue operations"},
		{"VP of Sales", "Since you lead the sales side"},
		{"Chief Technology Officer", "In your role as Chief Technology Officer"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			drafts := GenerateEmails(testCompany(), []types.Contact{testContact("Alice Chen", tt.title)}, nil, nil, "")
			require.Len(t, drafts, 1)
			assert.Contains(t, drafts[0].Body, tt.want)
			assert.Contains(t, drafts[0].PersonalizationPoints, "Title: "+tt.title)
		})
	}
}

func TestGenerateEmails_ValuePropDefaultsWhenBlank(t *testing.T) {
	drafts := GenerateEmails(testCompany(), []types.Contact{testContact("Alice Chen", "VP of Sales")}, nil, nil, "")
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Body, "We help companies like yours with sales enablement solutions.")

	drafts = GenerateEmails(testCompany(), []types.Contact{testContact("Alice Chen", "VP of Sales")}, nil, nil, "CRE deal tracking")
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Body, "We help companies like yours with CRE deal tracking.")
}

func TestGenerateEmails_ClosingAndSignature(t *testing.T) {
	drafts := GenerateEmails(testCompany(), []types.Contact{{Name: "", Title: "VP of Sales"}}, nil, nil, "")

	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Body, "Hi there,")
	assert.Contains(t, drafts[0].Body, "Would you be open to a 15-minute call next week to compare notes?")
	assert.Contains(t, drafts[0].Body, "Best,\n[Your Name]")
}

func TestGenerateEmails_NoContactsNoDrafts(t *testing.T) {
	drafts := GenerateEmails(testCompany(), nil, nil, nil, "")
	assert.Empty(t, drafts)
}

func TestExtractKeyword(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Acme secures new funding", "raised funding"},
		{"Acme closes Series C", "closed investment"},
		{"Acme launches analytics suite", "launched"},
		{"Acme partnership with Globex", "partnered"},
		{"Acme acquisition of Initech", "acquired"},
		{"Acme expansion into Europe", "expanded"},
		{"Acme hires new CTO", "hired"},
		{"Acme in the news", "announced"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeyword(tt.title))
		})
	}
}
