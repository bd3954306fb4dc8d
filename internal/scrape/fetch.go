package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"jobtrack/internal/domain"
)

// resultsPerPage is the board's page size; the start= offset is derived
// from it and a short page means the last page of a query.
const resultsPerPage = 10

// FetchError is a page-scoped failure: a transport error or a non-2xx
// status. The driver decides whether to skip the page or abandon the
// query; the fetcher never retries.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Fetcher struct {
	baseURL   string
	userAgent string
	hc        *http.Client
	pace      *rate.Limiter
}

// NewFetcher builds a fetcher that spaces consecutive requests at least
// delay apart. The delay is a configured pause, not a derived value.
func NewFetcher(baseURL, userAgent string, timeout, delay time.Duration) *Fetcher {
	return &Fetcher{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		hc:        &http.Client{Timeout: timeout},
		pace:      rate.NewLimiter(rate.Every(delay), 1),
	}
}

// PageURL builds the search URL for a zero-based page index.
func (f *Fetcher) PageURL(q domain.Query, page int) string {
	v := url.Values{}
	v.Set("q", q.Text)
	v.Set("l", q.Location)
	v.Set("start", strconv.Itoa(page*resultsPerPage))
	return f.baseURL + "/jobs?" + v.Encode()
}

// FetchPage downloads one results page, blocking on the inter-request
// delay first. Request-building and transport problems, and any non-2xx
// status, come back as *FetchError.
func (f *Fetcher) FetchPage(ctx context.Context, q domain.Query, page int) ([]byte, error) {
	if err := f.pace.Wait(ctx); err != nil {
		return nil, err
	}

	pageURL := f.PageURL(q, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return nil, &FetchError{URL: pageURL, Status: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	return body, nil
}
