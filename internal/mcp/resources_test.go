package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractSectionName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid section URI", uri: "career://sections/bio", expected: "bio"},
		{name: "invalid prefix", uri: "file://sections/bio", expected: ""},
		{name: "listing URI", uri: "career://sections", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSectionName(tt.uri))
		})
	}
}

func TestServer_handleSectionsResource(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleSectionsResource(context.Background(), makeReadResourceRequest("career://sections"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"name": "Bio"`)
	assert.Contains(t, result.Contents[0].Text, `"uri": "career://sections/linkedin"`)
	assert.Contains(t, result.Contents[0].Text, `"missing": true`)
}

func TestServer_handleSectionResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("returns raw text case-insensitively", func(t *testing.T) {
		result, err := server.handleSectionResource(ctx, makeReadResourceRequest("career://sections/BIO"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "Computer Science graduate.", result.Contents[0].Text)
	})

	t.Run("missing section returns placeholder", func(t *testing.T) {
		result, err := server.handleSectionResource(ctx, makeReadResourceRequest("career://sections/goals"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, "Career Goals.txt not found.")
	})

	t.Run("unknown section returns not found", func(t *testing.T) {
		_, err := server.handleSectionResource(ctx, makeReadResourceRequest("career://sections/hobbies"))
		require.Error(t, err)
	})
}
