// Package enrichment derives target buyer personas and finds verified
// contacts for them at the researched company.
package enrichment

import (
	"strings"

	"github.com/jonathan/prospect-researcher/internal/types"
)

// maxPersonas caps the persona list; order is significance order.
const maxPersonas = 3

// crePersonas is the commercial-real-estate acquisitions persona family,
// used when the caller targets acquisitions roles or sells a CRE product.
var crePersonas = []types.Persona{
	{
		Persona: "Acquisitions Associate",
		Why:     "Runs deal sourcing and underwriting day to day, feels tooling pain first",
	},
	{
		Persona: "Acquisitions Analyst",
		Why:     "Owns the models and data entry behind every deal evaluation",
	},
	{
		Persona: "Director of Acquisitions",
		Why:     "Decision maker for the acquisitions process and the tools behind it",
	},
}

// defaultPersonas is the sales-tool persona trio used absent any override.
var defaultPersonas = []types.Persona{
	{
		Persona: "VP of Sales / Chief Revenue Officer",
		Why:     "Decision maker for sales tools and processes, owns revenue targets",
	},
	{
		Persona: "Head of Revenue Operations",
		Why:     "Manages sales tech stack, evaluates tools for efficiency and data quality",
	},
	{
		Persona: "Sales Enablement Manager",
		Why:     "Responsible for training and tools that improve sales team productivity",
	},
}

// IdentifyTargetPersonas derives 1-3 buyer personas. An explicit
// targetPersona wins: the CRE acquisitions family when it names an
// acquisitions associate/analyst role, otherwise the persona itself as
// primary with a synthetic reporting-manager secondary for senior titles.
// Without an override, whatWeSell containing "cre" selects the CRE family;
// anything else gets the default sales-tool trio.
func IdentifyTargetPersonas(industry, whatWeSell, targetPersona string) []types.Persona {
	if targetPersona != "" {
		return personasFromOverride(targetPersona)
	}

	if strings.Contains(strings.ToLower(whatWeSell), "cre") {
		return clampPersonas(crePersonas)
	}

	return clampPersonas(defaultPersonas)
}

func personasFromOverride(targetPersona string) []types.Persona {
	lower := strings.ToLower(targetPersona)

	if strings.Contains(lower, "acquisition") &&
		(strings.Contains(lower, "associate") || strings.Contains(lower, "analyst")) {
		return clampPersonas(crePersonas)
	}

	personas := []types.Persona{
		{
			Persona: targetPersona,
			Why:     "Explicitly requested target persona",
		},
	}

	if strings.Contains(lower, "vp") || strings.Contains(lower, "director") || strings.Contains(lower, "head") {
		personas = append(personas, types.Persona{
			Persona: "Manager reporting to " + targetPersona,
			Why:     "Hands-on owner of the process the senior target delegates",
		})
	}

	return clampPersonas(personas)
}

func clampPersonas(personas []types.Persona) []types.Persona {
	if len(personas) > maxPersonas {
		return personas[:maxPersonas]
	}
	return personas
}

// MapPersonaToSearchTitles converts a persona into the title list used for
// people search. Rules match by substring in order; personas matching no
// rule fall back to a singleton list containing the persona verbatim.
func MapPersonaToSearchTitles(persona string) []string {
	lower := strings.ToLower(persona)

	if strings.Contains(lower, "acquisition") {
		switch {
		case strings.Contains(lower, "associate"):
			return []string{
				"Acquisitions Associate",
				"Senior Acquisitions Associate",
				"Acquisitions Manager",
				"Investment Associate",
			}
		case strings.Contains(lower, "analyst"):
			return []string{
				"Acquisitions Analyst",
				"Investment Analyst",
				"Deal Analyst",
				"Financial Analyst",
			}
		case strings.Contains(lower, "director"):
			return []string{
				"Director of Acquisitions",
				"VP of Acquisitions",
				"Head of Acquisitions",
				"Managing Director of Acquisitions",
				"Acquisitions Director",
			}
		}
	}

	if strings.Contains(lower, "vp") && strings.Contains(lower, "sales") {
		return []string{
			"VP of Sales",
			"Vice President of Sales",
			"Chief Revenue Officer",
			"CRO",
			"SVP Sales",
		}
	}

	if strings.Contains(lower, "revenue operations") {
		return []string{
			"Head of Revenue Operations",
			"Director of Revenue Operations",
			"VP Revenue Operations",
			"RevOps Manager",
		}
	}

	if strings.Contains(lower, "sales enablement") {
		return []string{
			"Sales Enablement Manager",
			"Director of Sales Enablement",
			"Head of Sales Enablement",
			"VP Sales Enablement",
		}
	}

	return []string{persona}
}
