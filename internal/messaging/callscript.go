package messaging

import (
	"fmt"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/types"
)

const maxDiscoveryQuestions = 5

const scriptValueProp = "accelerate their sales process with better prospect research and preparation"

// GenerateCallScript builds a cold-call script from the top initiative and
// top hiring signal. Everything is assembled from templates; no network
// calls happen here.
func GenerateCallScript(company types.CompanyProfile, initiatives []types.Initiative, hiringSignals []types.HiringSignal) types.CallScript {
	var topInitiative *types.Initiative
	if len(initiatives) > 0 {
		topInitiative = &initiatives[0]
	}
	var topSignal *types.HiringSignal
	if len(hiringSignals) > 0 {
		topSignal = &hiringSignals[0]
	}

	return types.CallScript{
		Opener:             buildOpener(company, topInitiative, topSignal),
		DiscoveryQuestions: buildDiscoveryQuestions(topInitiative, topSignal),
		Objections:         buildObjectionHandlers(),
	}
}

func buildOpener(company types.CompanyProfile, initiative *types.Initiative, signal *types.HiringSignal) string {
	var b strings.Builder
	b.WriteString("Hi [Name], this is [Your Name] from [Company]. ")

	switch {
	case initiative != nil:
		b.WriteString(fmt.Sprintf("I saw that %s recently %s. ", company.Name, extractAction(initiative.Title)))
		b.WriteString(fmt.Sprintf("I work with companies in similar situations to help them %s. ", scriptValueProp))
	case signal != nil:
		b.WriteString(fmt.Sprintf("I noticed you're hiring for %s roles. ", signal.Role))
		b.WriteString(fmt.Sprintf("We work with growing teams like yours to %s. ", scriptValueProp))
	default:
		b.WriteString(fmt.Sprintf("I work with %s companies to %s. ", company.Industry, scriptValueProp))
	}

	b.WriteString("Do you have 2 minutes to chat?")
	return b.String()
}

func buildDiscoveryQuestions(initiative *types.Initiative, signal *types.HiringSignal) []string {
	questions := []string{
		"Tell me about your current sales process - how does your team typically approach outbound?",
	}

	if initiative != nil {
		questions = append(questions, fmt.Sprintf(
			"With the recent %s, how is that impacting your sales strategy?",
			extractAction(initiative.Title)))
	}
	if signal != nil {
		questions = append(questions, fmt.Sprintf(
			"You're hiring for %s - what's driving that growth right now?",
			signal.Role))
	}

	questions = append(questions,
		"What are the biggest challenges your sales team faces today?",
		"How do you currently handle prospect research and prep for your reps?",
		"If you could wave a magic wand, what would you change about your current process?",
	)

	if len(questions) > maxDiscoveryQuestions {
		questions = questions[:maxDiscoveryQuestions]
	}
	return questions
}

func buildObjectionHandlers() []string {
	return []string{
		`"We're not interested" -> "I understand. Can I ask - is it that the timing isn't right, or is it that this isn't a priority for your team?"`,
		`"Send me some information" -> "Happy to. Just so I send the right materials - what specifically would you want to see? A case study, a demo video, or pricing?"`,
		`"We're happy with our current solution" -> "That's great to hear. Out of curiosity, how long have you been using it, and is there anything you wish it did better?"`,
		`"We don't have budget" -> "Totally understand. When does your next budget cycle open up? I'd love to stay in touch for when the timing is better."`,
		`"Can you email me?" -> "Absolutely. Before I do - I want to make sure I send you something relevant. What's your biggest pain point right now?"`,
	}
}

func extractAction(text string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "funding"), strings.Contains(lower, "series"):
		return "raised funding"
	case strings.Contains(lower, "launch"):
		return "launched a new product"
	case strings.Contains(lower, "partnership"):
		return "announced a partnership"
	case strings.Contains(lower, "acquisition"):
		return "made an acquisition"
	case strings.Contains(lower, "expansion"):
		return "expanded operations"
	}
	return "made an announcement"
}
