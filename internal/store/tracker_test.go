package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
)

func testRecord(title, company string) domain.JobRecord {
	return domain.JobRecord{
		Title:       title,
		Company:     company,
		Location:    "Bengaluru",
		Platform:    "Indeed",
		CompanyType: domain.CompanyUnknown,
		Status:      domain.StatusNotApplied,
		DateAdded:   "2026-08-31",
	}
}

func TestLoadMissingFile(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	records, err := tr.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMergeRoundTrip(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	stats, err := tr.Merge([]domain.JobRecord{
		testRecord("Data Analyst", "Infosys"),
		testRecord("BI Analyst", "Orbit Labs"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 0, stats.Skipped)

	records, err := tr.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Data Analyst", records[0].Title)
	assert.Equal(t, "Infosys", records[0].Company)
	assert.Equal(t, domain.StatusNotApplied, records[0].Status)
	assert.Equal(t, "BI Analyst", records[1].Title)
}

func TestMergeIdempotent(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))
	batch := []domain.JobRecord{
		testRecord("Data Analyst", "Infosys"),
		testRecord("BI Analyst", "Orbit Labs"),
	}

	first, err := tr.Merge(batch)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := tr.Merge(batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Skipped)

	records, err := tr.Load()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMergeCollapsesInBatchDuplicates(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	// Same posting under whitespace/case variations plus one new job.
	stats, err := tr.Merge([]domain.JobRecord{
		testRecord("Data Analyst", "Infosys"),
		testRecord("data  analyst", "INFOSYS"),
		testRecord("Reporting Analyst", "Quorix"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 1, stats.Skipped)

	records, err := tr.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	keys := map[string]bool{}
	for _, r := range records {
		assert.False(t, keys[r.DedupKey()], "duplicate key in store: %q", r.DedupKey())
		keys[r.DedupKey()] = true
	}
}

func TestMergePreservesEditedStatus(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	_, err := tr.Merge([]domain.JobRecord{testRecord("Data Analyst", "Infosys")})
	require.NoError(t, err)

	// The dashboard flips the status between runs.
	require.NoError(t, tr.SetStatus("Data Analyst", "Infosys", domain.StatusApplied))

	// Next run re-derives the same posting.
	stats, err := tr.Merge([]domain.JobRecord{testRecord("Data Analyst", "Infosys")})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Inserted)
	assert.Equal(t, 1, stats.Skipped)

	records, err := tr.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusApplied, records[0].Status)
}

func TestSetStatusUnknownRow(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	_, err := tr.Merge([]domain.JobRecord{testRecord("Data Analyst", "Infosys")})
	require.NoError(t, err)

	err = tr.SetStatus("Ghost Role", "Nowhere", domain.StatusApplied)
	assert.Error(t, err)
}

func TestMergeWritesHeaderAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	tr := Open(filepath.Join(dir, "tracker.csv"))

	_, err := tr.Merge([]domain.JobRecord{testRecord("Data Analyst", "Infosys")})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "tracker.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Job Title,Company Name,Location,Platform,Company Type,Status,Date Added", lines[0])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temp file left behind: %s", e.Name())
	}
}

func TestLoadRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))

	_, err := Open(path).Load()
	assert.Error(t, err)
}

func TestMergeAfterManualReorderKeepsRowOrder(t *testing.T) {
	tr := Open(filepath.Join(t.TempDir(), "tracker.csv"))

	_, err := tr.Merge([]domain.JobRecord{
		testRecord("Data Analyst", "Infosys"),
		testRecord("BI Analyst", "Orbit Labs"),
	})
	require.NoError(t, err)

	stats, err := tr.Merge([]domain.JobRecord{testRecord("Reporting Analyst", "Quorix")})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Inserted)

	records, err := tr.Load()
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Insertion order preserved: existing rows first, new ones appended.
	assert.Equal(t, "Data Analyst", records[0].Title)
	assert.Equal(t, "BI Analyst", records[1].Title)
	assert.Equal(t, "Reporting Analyst", records[2].Title)
}
