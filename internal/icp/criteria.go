// Package icp scores companies against an ideal-customer-profile and gates
// whether the pipeline spends enrichment calls on them.
package icp

import (
	"github.com/jonathan/prospect-researcher/internal/types"
)

// DefaultCriteria returns the built-in ICP definition. It is injected into
// the evaluator at construction so tests can substitute alternate profiles.
func DefaultCriteria() types.ICPCriteria {
	return types.ICPCriteria{
		Industries: []string{
			"Technology",
			"SaaS",
			"Financial Services",
			"E-commerce",
			"Software",
		},
		CompanySize: types.SizeRange{
			MinEmployees: 50,
			MaxEmployees: 5000,
		},
		RequiredTech: []string{
			"react",
			"node",
			"aws",
			"salesforce",
			"hubspot",
			"postgres",
			"mongodb",
			"python",
			"kubernetes",
		},
		Disqualifiers: []string{
			"government",
			"non-profit",
			"nonprofit",
			"education",
			"university",
			"school",
		},
		HiringSignals: types.HiringCriteria{
			MinOpenRoles:        3,
			RelevantDepartments: []string{"Engineering", "Sales", "Marketing", "Operations"},
		},
	}
}
