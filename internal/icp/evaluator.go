package icp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/types"
)

// Score weights. Tech contribution is capped at techScoreCap.
const (
	industryScore = 30
	sizeScore     = 20
	techScorePer  = 10
	techScoreCap  = 30
	hiringScore   = 20
)

// Evaluator scores a company against a fixed ICP definition.
type Evaluator struct {
	criteria types.ICPCriteria
}

// NewEvaluator creates an evaluator over the given criteria.
func NewEvaluator(criteria types.ICPCriteria) *Evaluator {
	return &Evaluator{criteria: criteria}
}

// Evaluate produces the ICP verdict for a company.
//
// Disqualifier keywords are absolute: any match in summary+industry+name
// short-circuits with fit=false, empty reasons, and score 0. Otherwise the
// final fit is (no disqualifying reason recorded) AND (industry matched OR
// (tech matches >= 2 AND hiring signals >= 2)); size or industry mismatches
// feed that formula through the recorded reasons rather than forcing
// fit=false directly.
func (e *Evaluator) Evaluate(company types.CompanyProfile, techStack []types.TechSignal, hiringSignals []types.HiringSignal) types.ICPVerdict {
	reasons := []string{}
	disqualifiers := []string{}
	score := 0

	companyText := strings.ToLower(company.Summary + " " + company.Industry + " " + company.Name)
	for _, dq := range e.criteria.Disqualifiers {
		if strings.Contains(companyText, strings.ToLower(dq)) {
			disqualifiers = append(disqualifiers, fmt.Sprintf("Company appears to be in %s sector (excluded from ICP)", dq))
		}
	}
	if len(disqualifiers) > 0 {
		return types.ICPVerdict{
			Fit:           false,
			Reasons:       []string{},
			Disqualifiers: disqualifiers,
			Score:         0,
		}
	}

	industryFit := false
	for _, industry := range e.criteria.Industries {
		if strings.Contains(strings.ToLower(company.Industry), strings.ToLower(industry)) {
			industryFit = true
			break
		}
	}
	if industryFit {
		reasons = append(reasons, fmt.Sprintf("Industry (%s) matches ICP criteria", company.Industry))
		score += industryScore
	} else {
		disqualifiers = append(disqualifiers, fmt.Sprintf("Industry (%s) does not match target industries", company.Industry))
	}

	sizeFit, sizeReason := e.checkCompanySize(company.SizeEstimate)
	if sizeFit {
		reasons = append(reasons, sizeReason)
		score += sizeScore
	} else {
		disqualifiers = append(disqualifiers, sizeReason)
	}

	var techMatches []string
	for _, tech := range techStack {
		for _, required := range e.criteria.RequiredTech {
			if strings.Contains(strings.ToLower(tech.Tech), strings.ToLower(required)) {
				techMatches = append(techMatches, tech.Tech)
				break
			}
		}
	}
	if len(techMatches) > 0 {
		named := techMatches
		if len(named) > 3 {
			named = named[:3]
		}
		reasons = append(reasons, fmt.Sprintf("Tech stack includes %d relevant technologies (%s)",
			len(techMatches), strings.Join(named, ", ")))
		techScore := len(techMatches) * techScorePer
		if techScore > techScoreCap {
			techScore = techScoreCap
		}
		score += techScore
	}

	if len(hiringSignals) >= e.criteria.HiringSignals.MinOpenRoles {
		reasons = append(reasons, fmt.Sprintf("Active hiring (%d relevant roles) indicates growth", len(hiringSignals)))
		score += hiringScore
	}

	// The formula is intentionally not "score >= threshold": fit requires
	// that no disqualifying reason was recorded AND either the industry
	// branch or the tech+hiring branch holds.
	fit := len(disqualifiers) == 0 && (industryFit || (len(techMatches) >= 2 && len(hiringSignals) >= 2))

	return types.ICPVerdict{
		Fit:           fit,
		Reasons:       reasons,
		Disqualifiers: disqualifiers,
		Score:         score,
	}
}

// sizeRangePattern parses the leading numeric range of a size estimate.
var sizeRangePattern = regexp.MustCompile(`(\d+)[-\s]*(\d+)?`)

// checkCompanySize compares the parsed size-estimate range against the
// target range.
func (e *Evaluator) checkCompanySize(sizeEstimate string) (bool, string) {
	min := e.criteria.CompanySize.MinEmployees
	max := e.criteria.CompanySize.MaxEmployees

	match := sizeRangePattern.FindStringSubmatch(sizeEstimate)
	if match == nil {
		return false, "Company size unknown - cannot verify fit"
	}

	low, _ := strconv.Atoi(match[1])
	high := low
	if match[2] != "" {
		high, _ = strconv.Atoi(match[2])
	}

	if high < min {
		return false, fmt.Sprintf("Company too small (%s) - ICP targets %d+ employees", sizeEstimate, min)
	}
	if low > max {
		return false, fmt.Sprintf("Company too large (%s) - ICP targets under %d employees", sizeEstimate, max)
	}
	return true, fmt.Sprintf("Company size (%s) fits ICP range (%d-%d employees)", sizeEstimate, min, max)
}
