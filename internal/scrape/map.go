package scrape

import (
	"jobtrack/internal/config"
	"jobtrack/internal/domain"
)

func MapSelectors(cfg config.Config) Selectors {
	return Selectors{
		Card:     cfg.Selectors.Card,
		Title:    cfg.Selectors.Title,
		Company:  cfg.Selectors.Company,
		Location: cfg.Selectors.Location,
	}
}

func MapQueries(in []config.Query) []domain.Query {
	out := make([]domain.Query, 0, len(in))
	for _, q := range in {
		out = append(out, domain.Query{
			Text:     q.Text,
			Location: q.Location,
			MaxPages: q.MaxPages,
		})
	}
	return out
}
