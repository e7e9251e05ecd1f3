// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompanyProfile outputs a human-readable summary of the profiled company.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", profile.Industry))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", profile.SizeEstimate))

	if profile.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(profile.Summary)
		sb.WriteString("\n")
	}

	if len(profile.Evidence) > 0 {
		sb.WriteString("\nEvidence:\n")
		count := min(len(profile.Evidence), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Evidence[i]))
		}
		if len(profile.Evidence) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Evidence)-maxItemsToShow))
		}
	}

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintICPVerdict outputs the fit decision with reasons and disqualifiers.
func (p *Printer) PrintICPVerdict(verdict types.ICPVerdict) {
	var sb strings.Builder

	fit := "NO"
	if verdict.Fit {
		fit = "YES"
	}
	sb.WriteString(fmt.Sprintf("Fit:   %s\n", fit))
	sb.WriteString(fmt.Sprintf("Score: %d\n", verdict.Score))

	if len(verdict.Reasons) > 0 {
		sb.WriteString("\nReasons:\n")
		for _, reason := range verdict.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	if len(verdict.Disqualifiers) > 0 {
		sb.WriteString("\nDisqualifiers:\n")
		for _, d := range verdict.Disqualifiers {
			sb.WriteString(fmt.Sprintf("  • %s\n", d))
		}
	}

	p.printBox("ICP VERDICT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSignals outputs the extracted initiatives, tech stack, and hiring signals.
func (p *Printer) PrintSignals(initiatives []types.Initiative, techStack []types.TechSignal, hiringSignals []types.HiringSignal) {
	var sb strings.Builder

	if len(initiatives) > 0 {
		sb.WriteString("Initiatives:\n")
		count := min(len(initiatives), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", initiatives[i].Title))
		}
		sb.WriteString("\n")
	}

	if len(techStack) > 0 {
		sb.WriteString("Tech Stack:\n")
		for _, tech := range techStack {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", tech.Tech, tech.Confidence))
		}
		sb.WriteString("\n")
	}

	if len(hiringSignals) > 0 {
		sb.WriteString("Hiring Signals:\n")
		for _, sig := range hiringSignals {
			sb.WriteString(fmt.Sprintf("  • %s\n", sig.Role))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No signals detected")
	}

	p.printBox("RESEARCH SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResearchResult outputs a summary of the completed research packet.
func (p *Printer) PrintResearchResult(result *types.ResearchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:     %s\n", result.Company.Name))
	sb.WriteString(fmt.Sprintf("Initiatives: %d\n", len(result.Initiatives)))
	sb.WriteString(fmt.Sprintf("Tech:        %d\n", len(result.TechStack)))
	sb.WriteString(fmt.Sprintf("Hiring:      %d\n", len(result.HiringSignals)))
	sb.WriteString(fmt.Sprintf("ICP score:   %d\n", result.ICPFit.Score))

	if len(result.Personas) > 0 {
		sb.WriteString("\nPersonas:\n")
		for _, persona := range result.Personas {
			sb.WriteString(fmt.Sprintf("  • %s\n", persona.Persona))
		}
	}

	if len(result.Contacts) > 0 {
		sb.WriteString("\nContacts:\n")
		count := min(len(result.Contacts), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := result.Contacts[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", c.Name, c.Title))
		}
		if len(result.Contacts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Contacts)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nEmails: %d  Hooks: %d\n",
		len(result.Messaging.Emails), len(result.Messaging.EmailHooks)))

	p.printBox("RESEARCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
