package providers

// Fixture data backing the simulated providers. Centered on commercial real
// estate firms so offline runs exercise the CRE persona paths end to end.

// fixtureCompany is one simulated company profile.
type fixtureCompany struct {
	Domain       string
	Name         string
	URL          string
	Summary      string
	Industry     string
	SizeEstimate string
	Markdown     string
	TechStack    []string
	JobTitles    []string
}

var fixtureCompanies = []fixtureCompany{
	{
		Domain:       "greystone.com",
		Name:         "Greystone",
		URL:          "https://greystone.com",
		Summary:      "Leading commercial real estate lending, investment, and advisory company with over $150 billion in assets under management. Specializes in multifamily, healthcare, and seniors housing financing.",
		Industry:     "Commercial Real Estate",
		SizeEstimate: "500-1000 employees",
		Markdown:     "# Greystone\n\nGreystone is a leading commercial real estate lending, investment, and advisory company. We specialize in multifamily housing, healthcare facilities, and seniors housing financing.\n\n## Services\n- Commercial Real Estate Lending\n- Investment Sales\n- Asset Management\n\n## Markets\nWe operate across the United States with a team of 800 professionals in major markets including New York, Los Angeles, and Dallas.",
		TechStack:    []string{"Salesforce", "Azure", "React", "Node.js", "PostgreSQL"},
		JobTitles:    []string{"Acquisitions Associate", "VP of Acquisitions", "Investment Analyst", "Underwriter"},
	},
	{
		Domain:       "cresmithgroup.com",
		Name:         "CRE Smith Group",
		URL:          "https://cresmithgroup.com",
		Summary:      "Boutique commercial real estate investment firm focused on value-add multifamily and mixed-use developments in secondary markets across the Southeast and Southwest United States.",
		Industry:     "Commercial Real Estate",
		SizeEstimate: "50-200 employees",
		Markdown:     "# CRE Smith Group\n\nBoutique commercial real estate investment firm specializing in value-add opportunities with a team of 120 professionals.\n\n## Focus Areas\n- Multifamily Value-Add\n- Mixed-Use Developments\n- Secondary Market Investments",
		TechStack:    []string{"Juniper Square", "Salesforce", "AWS", "Python"},
		JobTitles:    []string{"Acquisitions Analyst", "Acquisitions Associate", "Director of Acquisitions"},
	},
	{
		Domain:       "horizonequity.com",
		Name:         "Horizon Equity Partners",
		URL:          "https://horizonequity.com",
		Summary:      "Private equity real estate firm focused on opportunistic and value-add investments in multifamily, office, and industrial properties. $5 billion in assets under management.",
		Industry:     "Commercial Real Estate Private Equity",
		SizeEstimate: "100-500 employees",
		Markdown:     "# Horizon Equity Partners\n\nPrivate equity real estate firm pursuing opportunistic investments nationwide with a team of 250 people.\n\n## Investment Strategy\n- Value-Add Multifamily\n- Office Repositioning\n- Industrial Development",
		TechStack:    []string{"Juniper Square", "Yardi", "Salesforce", "AWS", "Python"},
		JobTitles:    []string{"Acquisitions Associate", "VP of Acquisitions", "Deal Analyst", "Investment Analyst"},
	},
}

// fixtureContact is one simulated person template.
type fixtureContact struct {
	FirstName string
	LastName  string
}

var fixtureContacts = []fixtureContact{
	{"Sarah", "Mitchell"},
	{"Michael", "Chen"},
	{"Jennifer", "Rodriguez"},
	{"David", "Thompson"},
	{"Emily", "Patel"},
	{"James", "Anderson"},
}

// fixtureNews is one simulated news story; %s is the company name.
type fixtureNews struct {
	Title    string
	Content  string
	Category string
}

var fixtureNewsStories = []fixtureNews{
	{
		Title:    "%s closes $750M fund for opportunistic real estate investments",
		Content:  "%s successfully closed its latest opportunistic real estate fund at $750 million, exceeding its initial target of $600 million. The fund will focus on distressed assets, value-add multifamily properties, and office-to-residential conversions in urban markets.",
		Category: "funding",
	},
	{
		Title:    "%s expands acquisitions team with five new hires across US offices",
		Content:  "%s is expanding its acquisitions capabilities with the addition of five experienced professionals across its New York, Dallas, and Los Angeles offices. The new hires bring expertise in underwriting, due diligence, and capital markets as the firm scales its investment activities.",
		Category: "hiring",
	},
	{
		Title:    "%s partners with major institutional investor for multifamily platform",
		Content:  "%s announced a strategic partnership with a leading institutional investor to launch a new multifamily investment platform. The joint venture will target value-add opportunities in major metropolitan areas with initial equity commitments exceeding $300 million.",
		Category: "partnership",
	},
}

// fixtureHooksResponse is the canned numbered-hooks completion returned by
// the simulated text generator.
const fixtureHooksResponse = `1. I noticed your company recently raised Series B funding - curious how that's changing your go-to-market strategy?

2. Saw you're hiring multiple sales roles - how's your team currently handling deal qualification and pipeline management?

3. Your recent expansion into the commercial real estate sector caught my attention. What's driving that strategic shift?

4. I noticed you're building out your sales development team. Are you finding it challenging to keep your growing team aligned on deal tracking?

5. With your company's growth trajectory in PropTech, how are you currently managing your deal flow and CRE transactions?

6. I see you're hiring for a VP of Sales - typically that signals scaling challenges. How's your current deal management infrastructure holding up?

7. Quick question: I work with commercial real estate companies scaling their operations. What's your biggest friction point in managing deals right now?

8. Your company's recent initiative around digital transformation - how is that impacting your sales and deal management processes?

9. I help CRE firms like yours streamline deal management. Would it be worth a quick conversation about your current approach?

10. Noticed your team is growing fast in a competitive market. Curious - what tools are you using to keep everyone on the same page with deals?`
