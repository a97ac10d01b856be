package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeJoinsAddressLines(t *testing.T) {
	records := []Business{{
		Name:             "Pike Place Chowder",
		FormattedAddress: "1530 Post Alley\nSeattle, WA 98101",
	}}

	got := Summarize(records, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "1530 Post Alley, Seattle, WA 98101", got[0].Address)
	assert.NotContains(t, got[0].Address, "\n")
}

func TestSummarizeStripsQueryString(t *testing.T) {
	raw := "https://www.yelp.com/biz/pike-place-chowder?adjust_creative=x&utm_source=y"
	records := []Business{{Name: "Pike Place Chowder", URL: raw}}

	got := Summarize(records, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "https://www.yelp.com/biz/pike-place-chowder", got[0].Website)
	assert.NotContains(t, got[0].Website, "?")
	assert.True(t, strings.HasPrefix(raw, got[0].Website))
}

func TestSummarizeURLWithoutQueryIsUnchanged(t *testing.T) {
	records := []Business{{URL: "https://example.com/biz"}}

	got := Summarize(records, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/biz", got[0].Website)
}

func TestSummarizeKeepsFirstPhotoOnly(t *testing.T) {
	records := []Business{
		{Name: "a", Photos: []string{"first.jpg", "second.jpg"}},
		{Name: "b"},
	}

	got := Summarize(records, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "first.jpg", got[0].Photo)
	assert.Empty(t, got[1].Photo)
}

func TestSummarizePreservesUpstreamOrder(t *testing.T) {
	records := []Business{
		{ID: "3", Name: "third"},
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
	}

	got := Summarize(records, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].PlaceID)
	assert.Equal(t, "1", got[1].PlaceID)
	assert.Equal(t, "2", got[2].PlaceID)
}

func TestSummarizeAppliesExclusion(t *testing.T) {
	bl := NewBlacklist()
	records := []Business{
		{Name: "Pike Place Chowder"},
		{Name: "Walmart"},
		{Name: "STARBUCKS"},
	}

	got := Summarize(records, bl.Has)

	require.Len(t, got, 1)
	assert.Equal(t, "Pike Place Chowder", got[0].Name)
}

func TestSummarizeNilPredicateFiltersNothing(t *testing.T) {
	records := []Business{{Name: "Walmart"}, {Name: "Starbucks"}}

	got := Summarize(records, nil)

	assert.Len(t, got, 2)
}

func TestSummarizeEmptyInput(t *testing.T) {
	got := Summarize(nil, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
