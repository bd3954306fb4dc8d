package domain

// Query is one search the pipeline pages through: a phrase, a location
// filter and a page cap. Immutable for the duration of a run.
type Query struct {
	Text     string
	Location string
	MaxPages int
}
