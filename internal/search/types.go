package search

// Business is a raw record as returned by the upstream search API.
// FormattedAddress keeps the upstream newline-separated lines.
type Business struct {
	ID               string
	Name             string
	FormattedAddress string
	DisplayPhone     string
	URL              string
	Photos           []string
}

// UpstreamError is an error payload reported inside an otherwise
// successful API response. It is not a transport failure.
type UpstreamError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Result is the outcome of one search call.
type Result struct {
	Total    int
	Business []Business
	Errors   []UpstreamError
}

// Empty reports whether the result carries nothing to show: either
// the upstream reported an error payload or it matched no business.
func (r *Result) Empty() bool {
	return len(r.Errors) > 0 || r.Total == 0
}

// Summary is the display-ready subset of a Business. The json tags
// are the client contract and must not change.
type Summary struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Photo   string `json:"photos,omitempty"`
}

// Detail is the enriched record served by the business detail
// endpoint. Website is filled in by ResolveWebsite.
type Detail struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"address"`
	DisplayPhone     string   `json:"phone"`
	URL              string   `json:"url"`
	Website          string   `json:"website,omitempty"`
	Photos           []string `json:"photos,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"review_count,omitempty"`
	Price            string   `json:"price,omitempty"`
}
