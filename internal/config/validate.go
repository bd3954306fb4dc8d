package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg: keyword and
// selector lists are trimmed and deduped, and empty fields fall back to
// the built-in Indeed defaults.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	fallback := func(xs []string, def func() []string) []string {
		xs = trimList(xs)
		if len(xs) == 0 {
			return def()
		}
		return xs
	}

	// ---- Defaults ----

	if strings.TrimSpace(out.App.Platform) == "" {
		out.App.Platform = DefaultPlatform
	}
	if strings.TrimSpace(out.App.BaseURL) == "" {
		out.App.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(out.HTTP.UserAgent) == "" {
		out.HTTP.UserAgent = DefaultUserAgent
	}
	if out.HTTP.TimeoutSeconds <= 0 {
		out.HTTP.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if strings.TrimSpace(out.Tracker.Path) == "" {
		out.Tracker.Path = DefaultTrackerPath
	}
	if strings.TrimSpace(out.Scrape.AnomalyPolicy) == "" {
		out.Scrape.AnomalyPolicy = AnomalyPolicyCard
	}
	if len(out.Queries) == 0 {
		out.Queries = defaultQueries()
	}

	out.Selectors.Card = fallback(out.Selectors.Card, defaultCardSelectors)
	out.Selectors.Title = fallback(out.Selectors.Title, defaultTitleSelectors)
	out.Selectors.Company = fallback(out.Selectors.Company, defaultCompanySelectors)
	out.Selectors.Location = fallback(out.Selectors.Location, defaultLocationSelectors)

	out.Classify.MNC = fallback(out.Classify.MNC, defaultMNCKeywords)
	out.Classify.Startup = fallback(out.Classify.Startup, defaultStartupKeywords)
	out.Classify.MidSize = fallback(out.Classify.MidSize, defaultMidSizeKeywords)

	// ---- Validation rules ----

	if !strings.HasPrefix(out.App.BaseURL, "http://") && !strings.HasPrefix(out.App.BaseURL, "https://") {
		res.addErr("app.base_url must be an http(s) URL, got %q", out.App.BaseURL)
	}

	if out.HTTP.DelaySeconds <= 0 {
		out.HTTP.DelaySeconds = DefaultDelaySeconds
	} else if out.HTTP.DelaySeconds < 2 {
		res.addWarn("http.delay_seconds is very low (%d) and may get the scraper blocked.", out.HTTP.DelaySeconds)
	}

	switch out.Scrape.AnomalyPolicy {
	case AnomalyPolicyCard, AnomalyPolicyPage:
	default:
		res.addErr("scrape.anomaly_policy must be %q or %q, got %q",
			AnomalyPolicyCard, AnomalyPolicyPage, out.Scrape.AnomalyPolicy)
	}

	for i, q := range out.Queries {
		q.Text = strings.TrimSpace(q.Text)
		q.Location = strings.TrimSpace(q.Location)
		if q.Text == "" {
			res.addErr("queries[%d].text is empty", i)
		}
		if q.MaxPages <= 0 {
			res.addWarn("queries[%d].max_pages not set; using %d", i, DefaultMaxPages)
			q.MaxPages = DefaultMaxPages
		}
		if q.MaxPages > 50 {
			res.addWarn("queries[%d].max_pages is %d; long runs hammer the board.", i, q.MaxPages)
		}
		out.Queries[i] = q
	}

	// duplicate queries waste requests and inflate the skipped count
	seenQ := map[string]bool{}
	for _, q := range out.Queries {
		key := strings.ToLower(q.Text + "|" + q.Location)
		if seenQ[key] {
			res.addWarn("duplicate query: %q in %q", q.Text, q.Location)
		}
		seenQ[key] = true
	}

	return out, res
}
