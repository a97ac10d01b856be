package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Searcher is the gateway contract the handlers depend on.
type Searcher interface {
	Search(ctx context.Context, location, term string, radius float64) (*Result, error)
	Details(ctx context.Context, id string) (*Detail, error)
	ResolveWebsite(ctx context.Context, d *Detail) error
}

// Client calls the third-party business-search GraphQL API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

const searchQuery = `
query Search($location: String!, $term: String, $radius: Float) {
  search(location: $location, term: $term, radius: $radius) {
    total
    business {
      id
      name
      url
      display_phone
      photos
      location {
        formatted_address
      }
    }
  }
}`

const detailsQuery = `
query Details($id: String!) {
  business(id: $id) {
    name
    url
    display_phone
    photos
    rating
    review_count
    price
    location {
      formatted_address
    }
  }
}`

type wireBusiness struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	DisplayPhone string   `json:"display_phone"`
	Photos       []string `json:"photos"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Price        string   `json:"price"`
	Location     struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
}

type wireResponse struct {
	Data struct {
		Search struct {
			Total    int            `json:"total"`
			Business []wireBusiness `json:"business"`
		} `json:"search"`
		Business *wireBusiness `json:"business"`
	} `json:"data"`
	Errors []UpstreamError `json:"errors"`
}

// Search queries businesses around a free-text location. term and
// radius are optional; zero values are omitted from the query.
func (c *Client) Search(ctx context.Context, location, term string, radius float64) (*Result, error) {
	vars := map[string]any{"location": location}
	if term != "" {
		vars["term"] = term
	}
	if radius > 0 {
		vars["radius"] = radius
	}

	var resp wireResponse
	if err := c.do(ctx, searchQuery, vars, &resp); err != nil {
		return nil, err
	}

	result := &Result{
		Total:  resp.Data.Search.Total,
		Errors: resp.Errors,
	}
	for _, wb := range resp.Data.Search.Business {
		result.Business = append(result.Business, Business{
			ID:               wb.ID,
			Name:             wb.Name,
			FormattedAddress: wb.Location.FormattedAddress,
			DisplayPhone:     wb.DisplayPhone,
			URL:              wb.URL,
			Photos:           wb.Photos,
		})
	}
	return result, nil
}

// Details fetches one business record by its external identifier.
func (c *Client) Details(ctx context.Context, id string) (*Detail, error) {
	var resp wireResponse
	if err := c.do(ctx, detailsQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("search: upstream error: %s", resp.Errors[0].Message)
	}
	wb := resp.Data.Business
	if wb == nil {
		return nil, fmt.Errorf("search: no business for id %q", id)
	}
	return &Detail{
		ID:               id,
		Name:             wb.Name,
		FormattedAddress: wb.Location.FormattedAddress,
		DisplayPhone:     wb.DisplayPhone,
		URL:              wb.URL,
		Photos:           wb.Photos,
		Rating:           wb.Rating,
		ReviewCount:      wb.ReviewCount,
		Price:            wb.Price,
	}, nil
}

// ResolveWebsite resolves the business's own website by following
// the canonical listing URL (query string stripped) through its
// redirect chain and recording the landing URL.
func (c *Client) ResolveWebsite(ctx context.Context, d *Detail) error {
	target := stripQuery(d.URL)
	if target == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("search: resolve website: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("search: resolve website: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	d.Website = resp.Request.URL.String()
	return nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out *wireResponse) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": vars,
	})
	if err != nil {
		return fmt.Errorf("search: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v3/graphql",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("search: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("search: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("search: unexpected status %d: %s", resp.StatusCode, data)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("search: decode response: %w", err)
	}
	return nil
}
