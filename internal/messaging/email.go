// Package messaging turns research facts into outreach assets: personalized
// emails, a call script, and optional LLM-generated opening hooks.
package messaging

import (
	"fmt"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/types"
)

// maxEmailDrafts caps how many contacts get a draft.
const maxEmailDrafts = 3

// DefaultValueProp is the product description used when the caller does not
// say what they sell.
const DefaultValueProp = "sales enablement solutions"

// GenerateEmails produces one personalized draft per contact, up to the
// cap. The body is assembled from a fixed template; the returned
// personalization points record which research facts each body references.
func GenerateEmails(company types.CompanyProfile, contacts []types.Contact, initiatives []types.Initiative, hiringSignals []types.HiringSignal, whatWeSell string) []types.EmailDraft {
	value := whatWeSell
	if value == "" {
		value = DefaultValueProp
	}

	var topInitiative *types.Initiative
	if len(initiatives) > 0 {
		topInitiative = &initiatives[0]
	}
	var topSignal *types.HiringSignal
	if len(hiringSignals) > 0 {
		topSignal = &hiringSignals[0]
	}

	limit := len(contacts)
	if limit > maxEmailDrafts {
		limit = maxEmailDrafts
	}

	drafts := make([]types.EmailDraft, 0, limit)
	for _, contact := range contacts[:limit] {
		drafts = append(drafts, buildDraft(company, contact, topInitiative, topSignal, value))
	}
	return drafts
}

func buildDraft(company types.CompanyProfile, contact types.Contact, initiative *types.Initiative, signal *types.HiringSignal, value string) types.EmailDraft {
	var points []string

	subject := fmt.Sprintf("Quick question about %s", company.Name)
	if initiative != nil {
		subject = fmt.Sprintf("%s %s", company.Name, ExtractKeyword(initiative.Title))
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("Hi %s,\n\n", contact.FirstName()))

	switch {
	case initiative != nil:
		body.WriteString(fmt.Sprintf("I saw that %s recently %s. %s.\n\n",
			company.Name, ExtractKeyword(initiative.Title), initiative.WhyItMatters))
		points = append(points, "Initiative: "+initiative.Title)
	case signal != nil:
		body.WriteString(fmt.Sprintf("I noticed %s is hiring for %s - usually a sign of a team under growth pressure.\n\n",
			company.Name, signal.Role))
		points = append(points, "Hiring: "+signal.Role)
	default:
		body.WriteString(fmt.Sprintf("I've been following %s's work in %s.\n\n",
			company.Name, company.Industry))
		points = append(points, "Industry: "+company.Industry)
	}

	body.WriteString(fmt.Sprintf("We help companies like yours with %s.\n\n", value))

	lowerTitle := strings.ToLower(contact.Title)
	switch {
	case strings.Contains(lowerTitle, "revenue"):
		body.WriteString("Given your ownership of revenue operations, I thought this might land close to home.\n\n")
	case strings.Contains(lowerTitle, "sales"):
		body.WriteString("Since you lead the sales side, I figured you would feel this pain most directly.\n\n")
	default:
		body.WriteString(fmt.Sprintf("In your role as %s, I suspect this touches your world too.\n\n", contact.Title))
	}
	points = append(points, "Title: "+contact.Title)

	body.WriteString("Would you be open to a 15-minute call next week to compare notes?\n\n")
	body.WriteString("Best,\n[Your Name]")

	return types.EmailDraft{
		Subject:               subject,
		Body:                  body.String(),
		PersonalizationPoints: points,
	}
}

// ExtractKeyword maps an initiative title to a short action phrase for
// subjects and hooks.
func ExtractKeyword(text string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "funding"):
		return "raised funding"
	case strings.Contains(lower, "series"):
		return "closed investment"
	case strings.Contains(lower, "launch"):
		return "launched"
	case strings.Contains(lower, "partnership"):
		return "partnered"
	case strings.Contains(lower, "acquisition"):
		return "acquired"
	case strings.Contains(lower, "expansion"):
		return "expanded"
	case strings.Contains(lower, "hire"):
		return "hired"
	}
	return "announced"
}
