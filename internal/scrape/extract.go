package scrape

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"jobtrack/internal/scrape/util"
)

// Card is one posting as it appears on a results page, before
// normalization. Fields the markup didn't yield stay blank.
type Card struct {
	Title    string
	Company  string
	Location string
}

// Selectors lists the CSS selectors tried for each card field, in
// priority order: first match wins. Keeping the fallbacks as data means a
// board markup change is a config edit, not a code change.
type Selectors struct {
	Card     []string
	Title    []string
	Company  []string
	Location []string
}

// ExtractCards pulls the job cards out of a results page. A card with no
// extractable title is malformed and gets skipped and counted; missing
// company or location just stays blank for the normalizer's fallbacks.
// Zero cards is not an error — it is the board's end-of-results signal.
func ExtractCards(markup []byte, sel Selectors) (cards []Card, anomalies int, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, 0, fmt.Errorf("parse results page: %w", err)
	}

	nodes := findCards(doc, sel.Card)
	if nodes == nil {
		return nil, 0, nil
	}

	nodes.Each(func(_ int, s *goquery.Selection) {
		c := Card{
			Title:    firstMatch(s, sel.Title),
			Company:  firstMatch(s, sel.Company),
			Location: firstMatch(s, sel.Location),
		}
		if c.Title == "" {
			anomalies++
			return
		}
		cards = append(cards, c)
	})

	return cards, anomalies, nil
}

// findCards tries each card selector until one yields nodes, mirroring
// how the board's markup drifts between class names over time.
func findCards(doc *goquery.Document, candidates []string) *goquery.Selection {
	var last *goquery.Selection
	for _, sel := range candidates {
		nodes := doc.Find(sel)
		if nodes.Length() > 0 {
			return nodes
		}
		last = nodes
	}
	return last
}

// firstMatch walks the selector fallbacks and returns the first non-empty
// text, falling back to a title attribute for badge-wrapped elements.
func firstMatch(s *goquery.Selection, candidates []string) string {
	for _, sel := range candidates {
		node := s.Find(sel).First()
		if t := util.CleanText(node.Text()); t != "" {
			return t
		}
		if v, ok := node.Attr("title"); ok {
			if t := util.CleanText(v); t != "" {
				return t
			}
		}
	}
	return ""
}
