package domain

import "strings"

// CompanyType is the coarse employer-size bucket assigned when a job is
// first scraped. Stored rows keep the value they were classified with.
type CompanyType string

const (
	CompanyStartup CompanyType = "Startup"
	CompanyMidSize CompanyType = "Mid-size"
	CompanyMNC     CompanyType = "MNC"
	CompanyUnknown CompanyType = "Unknown"
)

// Status tracks whether the user has applied to a posting. It is the only
// field a tracker consumer may rewrite in place.
type Status string

const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
)

type JobRecord struct {
	Company     string
	Title       string
	Location    string
	Platform    string
	CompanyType CompanyType
	Status      Status
	DateAdded   string // 2006-01-02, set at first insert
}

// DedupKey identifies a posting across runs: case-folded,
// whitespace-collapsed (title, company).
func (r JobRecord) DedupKey() string {
	return foldKey(r.Title) + "\x1f" + foldKey(r.Company)
}

func foldKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
