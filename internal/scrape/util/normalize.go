package util

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripNewBadge drops the standalone "new" badge Indeed attaches to fresh
// postings; it renders inside the title element and leaks into the text.
func StripNewBadge(title string) string {
	fields := strings.Fields(title)
	for len(fields) > 0 && strings.EqualFold(fields[0], "new") {
		fields = fields[1:]
	}
	for len(fields) > 0 && strings.EqualFold(fields[len(fields)-1], "new") {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}
