package search

import "strings"

// defaultBlacklist excludes national chains from product search
// results so local businesses surface first. Names are lowercase.
var defaultBlacklist = []string{
	"walmart",
	"walmart supercenter",
	"target",
	"costco",
	"mcdonald's",
	"starbucks",
	"subway",
	"7-eleven",
	"walgreens",
	"cvs pharmacy",
	"safeway",
	"whole foods market",
	"best buy",
	"home depot",
	"the home depot",
}

// Blacklist is a static set of lowercase business names excluded
// from product search results. Built once at startup, read-only
// afterwards.
type Blacklist map[string]struct{}

// NewBlacklist builds the set from the compiled-in defaults plus any
// extra names from configuration.
func NewBlacklist(extra ...string) Blacklist {
	b := make(Blacklist, len(defaultBlacklist)+len(extra))
	for _, name := range defaultBlacklist {
		b[name] = struct{}{}
	}
	for _, name := range extra {
		b[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return b
}

// Has reports membership, case-insensitively.
func (b Blacklist) Has(name string) bool {
	_, ok := b[strings.ToLower(name)]
	return ok
}
