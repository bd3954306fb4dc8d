package config

// Defaults mirror the board the tracker was built around. Everything here
// can be overridden from config.yml; empty fields fall back to these in
// NormalizeAndValidate.

const (
	DefaultPlatform  = "Indeed"
	DefaultBaseURL   = "https://in.indeed.com"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	DefaultTimeoutSeconds = 10
	DefaultDelaySeconds   = 2
	DefaultMaxPages       = 5

	DefaultTrackerPath = "tracker.csv"

	AnomalyPolicyCard = "card"
	AnomalyPolicyPage = "page"
)

func defaultQueries() []Query {
	texts := []string{
		"Data Analyst",
		"Business Analyst",
		"BI Analyst",
		"Reporting Analyst",
		"Analytics Executive",
		"Junior Data Analyst",
	}
	out := make([]Query, 0, len(texts))
	for _, t := range texts {
		out = append(out, Query{Text: t, Location: "India", MaxPages: DefaultMaxPages})
	}
	return out
}

// Selector fallbacks for Indeed's results markup. The board renames card
// classes periodically; later entries are older variants.
func defaultCardSelectors() []string {
	return []string{"div.job_seen_beacon", "div[data-jk]", "a[data-jk]", "div.jobCard"}
}

func defaultTitleSelectors() []string {
	return []string{"h2.jobTitle", "a.jcs-JobTitle", "span[title]"}
}

func defaultCompanySelectors() []string {
	return []string{"span.companyName", `[data-testid="company-name"]`}
}

func defaultLocationSelectors() []string {
	return []string{"div.companyLocation", `[data-testid="text-location"]`}
}

func defaultMNCKeywords() []string {
	return []string{
		"microsoft", "google", "amazon", "accenture", "tcs", "infosys",
		"wipro", "cognizant", "ibm", "oracle", "sap", "deloitte",
		"pwc", "ey", "kpmg", "capgemini", "tech mahindra", "hcl",
	}
}

func defaultStartupKeywords() []string {
	return []string{"startup", "labs", "technologies", ".io", ".ai"}
}

func defaultMidSizeKeywords() []string {
	return []string{"consult", "solutions", "services", "systems", "enterprises", "infotech"}
}
