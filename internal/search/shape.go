package search

import "strings"

// Summarize converts raw records into display summaries, preserving
// upstream order. When exclude is non-nil, records whose name it
// matches are dropped; location searches pass nil.
func Summarize(records []Business, exclude func(name string) bool) []Summary {
	out := make([]Summary, 0, len(records))
	for _, b := range records {
		if exclude != nil && exclude(b.Name) {
			continue
		}
		out = append(out, summarize(b))
	}
	return out
}

func summarize(b Business) Summary {
	s := Summary{
		Name:    b.Name,
		PlaceID: b.ID,
		Address: strings.Join(strings.Split(b.FormattedAddress, "\n"), ", "),
		Phone:   b.DisplayPhone,
		Website: stripQuery(b.URL),
	}
	if len(b.Photos) > 0 {
		s.Photo = b.Photos[0]
	}
	return s
}

// stripQuery drops the query-string suffix from a canonical URL.
func stripQuery(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}
