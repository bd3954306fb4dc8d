package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobtrack/internal/domain"
)

// Header is the tracker's fixed column order. The dashboard reads this
// file directly, so names and order are contract.
var Header = []string{
	"Job Title", "Company Name", "Location", "Platform",
	"Company Type", "Status", "Date Added",
}

// Tracker is the append-only CSV store. Writers take an advisory file
// lock around the whole load-merge-replace cycle, so two runs started at
// once serialize instead of clobbering each other.
type Tracker struct {
	path string
	lock *flock.Flock
}

type MergeStats struct {
	Inserted int
	Skipped  int
}

func Open(path string) *Tracker {
	return &Tracker{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (t *Tracker) Path() string { return t.path }

// Load reads the tracker back in row order, including any Status values a
// consumer edited in place. A missing file is an empty tracker.
func (t *Tracker) Load() ([]domain.JobRecord, error) {
	f, err := os.Open(t.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open tracker: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

func readRecords(r io.Reader) ([]domain.JobRecord, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read tracker: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	out := make([]domain.JobRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, domain.JobRecord{
			Title:       row[0],
			Company:     row[1],
			Location:    row[2],
			Platform:    row[3],
			CompanyType: domain.CompanyType(row[4]),
			Status:      domain.Status(row[5]),
			DateAdded:   row[6],
		})
	}
	return out, nil
}

func checkHeader(row []string) error {
	if len(row) != len(Header) {
		return fmt.Errorf("tracker header has %d columns, want %d", len(row), len(Header))
	}
	for i, col := range Header {
		if row[i] != col {
			return fmt.Errorf("tracker header column %d is %q, want %q", i, row[i], col)
		}
	}
	return nil
}

// Merge appends candidates whose dedup key is unseen, in encounter order,
// then atomically replaces the tracker file. Existing rows are carried
// through untouched, so manual Status edits survive. Duplicates within
// the candidate batch collapse the same way cross-run ones do.
func (t *Tracker) Merge(records []domain.JobRecord) (MergeStats, error) {
	var stats MergeStats

	if err := t.lock.Lock(); err != nil {
		return stats, fmt.Errorf("lock tracker: %w", err)
	}
	defer t.lock.Unlock()

	existing, err := t.Load()
	if err != nil {
		return stats, err
	}

	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[r.DedupKey()] = true
	}

	merged := existing
	for _, r := range records {
		key := r.DedupKey()
		if seen[key] {
			stats.Skipped++
			continue
		}
		seen[key] = true
		merged = append(merged, r)
		stats.Inserted++
	}

	if err := t.replace(merged); err != nil {
		return MergeStats{}, err
	}
	return stats, nil
}

// SetStatus rewrites the Status column of the row matching (title,
// company). It is the one in-place mutation a tracker consumer may make.
func (t *Tracker) SetStatus(title, company string, status domain.Status) error {
	if err := t.lock.Lock(); err != nil {
		return fmt.Errorf("lock tracker: %w", err)
	}
	defer t.lock.Unlock()

	records, err := t.Load()
	if err != nil {
		return err
	}

	want := domain.JobRecord{Title: title, Company: company}.DedupKey()
	found := false
	for i := range records {
		if records[i].DedupKey() == want {
			records[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no tracker row for %q at %q", title, company)
	}

	return t.replace(records)
}

// replace writes the full record set to a temp file in the tracker's
// directory and renames it over the tracker, so readers never observe a
// half-written file.
func (t *Tracker) replace(records []domain.JobRecord) error {
	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp tracker: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write tracker header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Title, r.Company, r.Location, r.Platform,
			string(r.CompanyType), string(r.Status), r.DateAdded,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write tracker row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush tracker: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync tracker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp tracker: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("replace tracker: %w", err)
	}
	return nil
}
