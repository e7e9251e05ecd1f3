package types

// SizeRange bounds acceptable company headcount.
type SizeRange struct {
	MinEmployees int `json:"min_employees"`
	MaxEmployees int `json:"max_employees"`
}

// HiringCriteria describes what hiring activity counts toward ICP fit.
type HiringCriteria struct {
	MinOpenRoles        int      `json:"min_open_roles"`
	RelevantDepartments []string `json:"relevant_departments"`
}

// ICPCriteria defines an ideal customer profile. The evaluator scores
// companies against one of these.
type ICPCriteria struct {
	Industries    []string       `json:"industries"`
	CompanySize   SizeRange      `json:"company_size"`
	RequiredTech  []string       `json:"required_tech"`
	Disqualifiers []string       `json:"disqualifiers"`
	HiringSignals HiringCriteria `json:"hiring_signals"`
}

// ICPVerdict is the evaluator's decision for one company. Reasons explain
// the score; Disqualifiers list matched knockout keywords.
type ICPVerdict struct {
	Fit           bool     `json:"fit"`
	Reasons       []string `json:"reasons"`
	Disqualifiers []string `json:"disqualifiers"`
	Score         int      `json:"score"`
}
