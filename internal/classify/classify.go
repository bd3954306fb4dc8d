package classify

import (
	"strings"

	"jobtrack/internal/domain"
)

// Rule maps a set of company-name fragments to a size bucket. Rules are
// evaluated in slice order and the first hit wins, so the slice order is
// the tie-break priority.
type Rule struct {
	Category domain.CompanyType
	Any      []string
}

type Classifier struct {
	rules []Rule
}

// New builds the fixed-priority rule table: MNC beats Startup beats
// Mid-size. Fragment lists come from config.
func New(mnc, startup, midsize []string) *Classifier {
	return &Classifier{
		rules: []Rule{
			{Category: domain.CompanyMNC, Any: lowerAll(mnc)},
			{Category: domain.CompanyStartup, Any: lowerAll(startup)},
			{Category: domain.CompanyMidSize, Any: lowerAll(midsize)},
		},
	}
}

// Classify is a pure function of the company name. Empty and placeholder
// names, and anything no rule matches, come back Unknown.
func (c *Classifier) Classify(company string) domain.CompanyType {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" || name == "unknown" || name == "n/a" {
		return domain.CompanyUnknown
	}

	for _, r := range c.rules {
		for _, frag := range r.Any {
			if frag == "" {
				continue
			}
			if strings.Contains(name, frag) {
				return r.Category
			}
		}
	}
	return domain.CompanyUnknown
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
