// Copyright 2026 Silver Diamond
// Tests for readability analysis

package silverdiamond

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadability_DefaultsToEnglish(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, capture(t, &got, http.StatusOK, `{"score":72.5,"readability":"fairly easy"}`))

	res, err := c.Readability(context.Background(), "Short words. Short sentences.")
	require.NoError(t, err)
	assert.Equal(t, 72.5, res.Score)
	assert.Equal(t, ReadabilityFairlyEasy, res.Readability)
	assert.Equal(t, "/text-readability", got.path)
	assert.Equal(t, "en", got.body["lang"])
}

func TestReadabilityInLanguage(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, capture(t, &got, http.StatusOK, `{"score":55,"readability":"standard"}`))

	res, err := c.ReadabilityInLanguage(context.Background(), "Frases cortas.", LanguageSpanish)
	require.NoError(t, err)
	assert.Equal(t, ReadabilityStandard, res.Readability)
	assert.Equal(t, "es", got.body["lang"])
}

func TestReadabilityInLanguage_BlankFallsBack(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, capture(t, &got, http.StatusOK, `{"score":55,"readability":"standard"}`))

	_, err := c.ReadabilityInLanguage(context.Background(), "Some text.", "  ")
	require.NoError(t, err)
	assert.Equal(t, "en", got.body["lang"])
}

func TestReadability_StringifiedScore(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"score":"62.1","readability":"standard"}`))

	score, err := c.ReadabilityScore(context.Background(), "Plain text.")
	require.NoError(t, err)
	assert.Equal(t, 62.1, score)
}

func TestReadabilityCategoryMethod(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"score":30,"readability":"difficult"}`))

	cat, err := c.ReadabilityCategory(context.Background(), "Dense prose.")
	require.NoError(t, err)
	assert.Equal(t, ReadabilityDifficult, cat)
}

func TestReadabilityIs(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		categories []ReadabilityCategory
		want       bool
	}{
		{name: "match", category: "standard", categories: []ReadabilityCategory{ReadabilityStandard}, want: true},
		{name: "no match", category: "difficult", categories: []ReadabilityCategory{ReadabilityEasy}, want: false},
		{name: "case insensitive", category: "Very Easy", categories: []ReadabilityCategory{ReadabilityVeryEasy}, want: true},
		{name: "several", category: "easy", categories: []ReadabilityCategory{ReadabilityStandard, ReadabilityEasy}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(http.StatusOK, `{"score":50,"readability":"`+tt.category+`"}`))
			ok, err := c.ReadabilityIs(context.Background(), "text", tt.categories...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestReadabilityIs_NoCategoriesGiven(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"score":50,"readability":"standard"}`))

	_, err := c.ReadabilityIs(context.Background(), "text")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsReadable(t *testing.T) {
	readable := map[string]bool{
		"very easy":        true,
		"easy":             true,
		"fairly easy":      true,
		"standard":         true,
		"fairly difficult": false,
		"difficult":        false,
		"very confusing":   false,
	}
	for category, want := range readable {
		c := newTestClient(t, respond(http.StatusOK, `{"score":50,"readability":"`+category+`"}`))

		ok, err := c.IsReadable(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "category %q", category)

		hard, err := c.IsNotReadable(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, !want, hard, "category %q", category)
	}
}

func TestReadability_MissingFields(t *testing.T) {
	for _, body := range []string{`{"score":50}`, `{"readability":"standard"}`} {
		c := newTestClient(t, respond(http.StatusOK, body))
		_, err := c.Readability(context.Background(), "text")
		require.ErrorIs(t, err, ErrUnexpectedResponse)
	}
}
