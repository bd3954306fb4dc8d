package scrape

import (
	"time"

	"jobtrack/internal/domain"
	"jobtrack/internal/scrape/util"
)

// NormalizeCard turns a raw card into a canonical record: whitespace
// collapsed, "Unknown" fallbacks applied, status defaulted, date stamped.
// CompanyType is left for the classifier.
func NormalizeCard(c Card, platform string, now time.Time) domain.JobRecord {
	rec := domain.JobRecord{
		Title:     util.StripNewBadge(util.CleanText(c.Title)),
		Company:   util.CleanText(c.Company),
		Location:  util.CleanText(c.Location),
		Platform:  platform,
		Status:    domain.StatusNotApplied,
		DateAdded: now.UTC().Format("2006-01-02"),
	}
	if rec.Company == "" {
		rec.Company = "Unknown"
	}
	if rec.Location == "" {
		rec.Location = "Unknown"
	}
	return rec
}
