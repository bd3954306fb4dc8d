package scrape

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobtrack/internal/classify"
	"jobtrack/internal/domain"
	"jobtrack/internal/store"
)

// RunSummary is the externally observable result of one pipeline run.
// Errors counts fetch failures and parse anomalies that were recovered
// locally; a persistence failure is returned, not counted.
type RunSummary struct {
	Fetched  int // pages fetched successfully
	Parsed   int // cards turned into records
	Inserted int
	Skipped  int
	Errors   int
}

type Runner struct {
	Fetcher    *Fetcher
	Selectors  Selectors
	Classifier *classify.Classifier
	Tracker    *store.Tracker
	Platform   string

	// SkipPageOnAnomaly drops a whole page when any of its cards is
	// malformed, instead of just the card.
	SkipPageOnAnomaly bool

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

// Run pages through every query sequentially, then merges everything it
// collected in a single store call, so duplicates within the run collapse
// alongside cross-run ones. Fetch failures and parse anomalies are logged
// and counted, never fatal; a store failure is, since nothing was durably
// recorded.
func (r *Runner) Run(ctx context.Context, queries []domain.Query) (RunSummary, error) {
	var sum RunSummary
	var batch []domain.JobRecord

	for _, q := range queries {
		log.Printf("[scrape] query %q location %q (up to %d pages)", q.Text, q.Location, q.MaxPages)

		for page := 0; page < q.MaxPages; page++ {
			body, err := r.Fetcher.FetchPage(ctx, q, page)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return sum, err
				}
				sum.Errors++
				if page == 0 {
					log.Printf("[scrape] %v; abandoning query %q", err, q.Text)
					break
				}
				log.Printf("[scrape] %v; skipping page %d", err, page+1)
				continue
			}
			sum.Fetched++

			cards, anomalies, err := ExtractCards(body, r.Selectors)
			if err != nil {
				sum.Errors++
				log.Printf("[scrape] page %d of %q: %v", page+1, q.Text, err)
				continue
			}
			sum.Errors += anomalies

			if len(cards) == 0 {
				log.Printf("[scrape] no cards on page %d of %q; done with query", page+1, q.Text)
				break
			}
			if anomalies > 0 && r.SkipPageOnAnomaly {
				log.Printf("[scrape] %d malformed cards on page %d of %q; dropping page", anomalies, page+1, q.Text)
				continue
			}

			for _, c := range cards {
				rec := NormalizeCard(c, r.Platform, r.now())
				rec.CompanyType = r.Classifier.Classify(rec.Company)
				batch = append(batch, rec)
			}
			sum.Parsed += len(cards)
			log.Printf("[scrape] page %d of %q: %d cards", page+1, q.Text, len(cards))

			// A short page is the board's last page for this query.
			if len(cards) < resultsPerPage {
				break
			}
		}
	}

	stats, err := r.Tracker.Merge(batch)
	if err != nil {
		return sum, fmt.Errorf("merge run results: %w", err)
	}
	sum.Inserted = stats.Inserted
	sum.Skipped = stats.Skipped

	log.Printf("[scrape] run done: fetched=%d parsed=%d inserted=%d skipped=%d errors=%d",
		sum.Fetched, sum.Parsed, sum.Inserted, sum.Skipped, sum.Errors)
	return sum, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
