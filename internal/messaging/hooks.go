package messaging

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

const hookCount = 10

// DefaultHookValueProp is used for hooks when the caller does not say what
// they sell.
const DefaultHookValueProp = "CRE deal management"

const hookSystemPrompt = `You are an expert B2B sales email copywriter specializing in personalized outbound messaging. Your goal is to create compelling email opening lines (hooks) that grab attention and demonstrate research.`

// HookGenerator produces email opening lines with a text generation model,
// falling back to templates when the model is unavailable or comes up short.
type HookGenerator struct {
	Generator providers.TextGenerator
}

// Generate returns exactly ten hooks. Model output is parsed as a numbered
// list; missing entries are padded from the template fallback, and any
// generation error drops to the fallback entirely.
func (g *HookGenerator) Generate(ctx context.Context, company types.CompanyProfile, contacts []types.Contact, initiatives []types.Initiative, hiringSignals []types.HiringSignal, whatWeSell string) []string {
	if g.Generator == nil {
		return FallbackHooks(company, initiatives, hiringSignals, whatWeSell)
	}

	userPrompt := buildHookPrompt(company, contacts, initiatives, hiringSignals, whatWeSell)

	response, err := g.Generator.GenerateText(ctx, hookSystemPrompt, userPrompt)
	if err != nil {
		log.Printf("hook generation failed, using template hooks: %v", err)
		return FallbackHooks(company, initiatives, hiringSignals, whatWeSell)
	}

	hooks := ParseHooks(response)
	if len(hooks) < hookCount {
		log.Printf("model returned only %d hooks, padding with templates", len(hooks))
		for _, fb := range FallbackHooks(company, initiatives, hiringSignals, whatWeSell) {
			if len(hooks) >= hookCount {
				break
			}
			hooks = append(hooks, fb)
		}
	}

	if len(hooks) > hookCount {
		hooks = hooks[:hookCount]
	}
	return hooks
}

func buildHookPrompt(company types.CompanyProfile, contacts []types.Contact, initiatives []types.Initiative, hiringSignals []types.HiringSignal, whatWeSell string) string {
	value := whatWeSell
	if value == "" {
		value = DefaultHookValueProp
	}

	size := company.SizeEstimate
	if size == "" {
		size = "Unknown size"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate 10 different email opening lines (hooks) for reaching out to prospects at %s.\n\n", company.Name)
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Company: %s (%s, %s)\n", company.Name, company.Industry, size)
	fmt.Fprintf(&b, "- What We Sell: %s", value)

	if len(contacts) > 0 {
		fmt.Fprintf(&b, "\n- Target Persona: %s", contacts[0].Title)
	}

	if len(initiatives) > 0 {
		b.WriteString("\n- Recent Initiatives:")
		for i, initiative := range initiatives {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "\n  %d. %s - %s", i+1, initiative.Title, initiative.WhyItMatters)
		}
	}

	if len(hiringSignals) > 0 {
		b.WriteString("\n- Hiring Signals:")
		for i, signal := range hiringSignals {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "\n  %d. %s - %s", i+1, signal.Role, signal.Signal)
		}
	}

	b.WriteString(`

Requirements:
1. Each hook should be 1-2 sentences maximum
2. Reference specific signals (initiatives, hiring, or industry context)
3. Create variety in tone and angle:
   - 3 hooks focused on strategic initiatives
   - 3 hooks focused on hiring/growth signals
   - 2 hooks focused on industry trends or pain points
   - 2 hooks using curiosity or questions
4. Make each hook distinctive - no repetition
5. Keep it conversational and authentic
6. Format: Return as numbered list (1., 2., 3., etc.)

Generate 10 hooks now:`)

	return b.String()
}

var (
	numberedLine = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	numberPrefix = regexp.MustCompile(`^(\d+)\.`)
)

// ParseHooks extracts numbered list entries from model output. Lines that
// follow a numbered entry without their own number are treated as
// continuations of that entry.
func ParseHooks(response string) []string {
	var hooks []string
	var current string

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := numberedLine.FindStringSubmatch(trimmed); m != nil {
			if current != "" {
				hooks = append(hooks, strings.TrimSpace(current))
			}
			current = m[2]
		} else if current != "" && trimmed != "" && !numberPrefix.MatchString(trimmed) {
			current += " " + trimmed
		}
	}

	if current != "" {
		hooks = append(hooks, strings.TrimSpace(current))
	}
	return hooks
}

// FallbackHooks builds ten template hooks from the top research signals.
func FallbackHooks(company types.CompanyProfile, initiatives []types.Initiative, hiringSignals []types.HiringSignal, whatWeSell string) []string {
	value := whatWeSell
	if value == "" {
		value = DefaultHookValueProp
	}
	lowerValue := strings.ToLower(value)

	var hooks []string

	if len(initiatives) > 0 {
		top := initiatives[0]
		keyword := ExtractKeyword(top.Title)
		hooks = append(hooks,
			fmt.Sprintf("I saw that %s recently %s. %s?", company.Name, keyword, top.WhyItMatters),
			fmt.Sprintf("Quick question about %s's %s - how is that impacting your %s process?", company.Name, keyword, lowerValue),
			fmt.Sprintf("Your recent %s caught my attention. Are you finding it challenging to manage the increased complexity?", keyword),
		)
	} else {
		hooks = append(hooks,
			fmt.Sprintf("I've been following %s's growth in %s. How are you currently handling your %s?", company.Name, company.Industry, lowerValue),
			fmt.Sprintf("Quick question: What's your biggest challenge with %s right now?", lowerValue),
			fmt.Sprintf("I work with %s companies to streamline %s. Would love to learn about your current approach.", company.Industry, lowerValue),
		)
	}

	if len(hiringSignals) > 0 {
		top := hiringSignals[0]
		hooks = append(hooks,
			fmt.Sprintf("Noticed %s is hiring for %s. Curious how your team is handling %s during this growth phase?", company.Name, top.Role, lowerValue),
			fmt.Sprintf("I see you're building out your team with %s - typically that signals scaling challenges. How's your %s infrastructure holding up?", top.Role, lowerValue),
			fmt.Sprintf("Your hiring for %s suggests growth. Are you finding it hard to keep everyone aligned on deals?", top.Role),
		)
	} else {
		hooks = append(hooks,
			fmt.Sprintf("How is %s currently managing %s across the organization?", company.Name, lowerValue),
			fmt.Sprintf("I noticed your company is in a growth phase. What tools are you using for %s?", lowerValue),
			fmt.Sprintf("Quick question about %s's approach to %s - would you be open to a brief conversation?", company.Name, lowerValue),
		)
	}

	hooks = append(hooks,
		fmt.Sprintf("I work with %s companies to %s. What's your biggest friction point right now?", company.Industry, lowerValue),
		fmt.Sprintf("Most %s companies struggle with %s at scale. How are you solving this?", company.Industry, lowerValue),
		fmt.Sprintf("Would it be worth a quick conversation about how %s approaches %s?", company.Name, lowerValue),
		fmt.Sprintf("Curious - what does your %s stack look like today?", lowerValue),
	)

	if len(hooks) > hookCount {
		hooks = hooks[:hookCount]
	}
	return hooks
}
