package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlacklistMatchesCaseInsensitively(t *testing.T) {
	bl := NewBlacklist()

	assert.True(t, bl.Has("walmart"))
	assert.True(t, bl.Has("Walmart"))
	assert.True(t, bl.Has("WALMART"))
	assert.False(t, bl.Has("Pike Place Chowder"))
}

func TestBlacklistExtraNames(t *testing.T) {
	bl := NewBlacklist("Bob's Burgers", "  Chain Cafe  ")

	assert.True(t, bl.Has("bob's burgers"))
	assert.True(t, bl.Has("chain cafe"))
}
