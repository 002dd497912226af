// Copyright 2026 Silver Diamond
// Tests for keyword extraction

package silverdiamond

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords_Extracts(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, capture(t, &got, http.StatusOK, `{"keywords":["go","http","client"]}`))

	kw, err := c.Keywords(context.Background(), "building an http client in go")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "http", "client"}, kw)
	assert.Equal(t, "/text-rank-keywords", got.path)
}

func TestKeywords_EmptyList(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"keywords":[]}`))

	kw, err := c.Keywords(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, kw)
}

func TestKeywords_UnexpectedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "not a list", body: `{"keywords":"go, http"}`},
		{name: "null", body: `{"keywords":null}`},
		{name: "mixed element types", body: `{"keywords":["go",7]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(http.StatusOK, tt.body))
			_, err := c.Keywords(context.Background(), "some text")
			require.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}
