package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/services"
)

func TestServer_handleExtractTags(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("extracts and expands tags", func(t *testing.T) {
		_, output, err := server.handleExtractTags(ctx, nil, ExtractTagsInput{Text: "Cats, Dogs"})
		require.NoError(t, err)

		assert.Equal(t, []string{"cat", "cats", "dog", "dogs"}, output.Tags)
		assert.Equal(t, 4, output.Count)
		assert.Equal(t, "cat, cats, dog, dogs | 4 relevant keywords", output.Display)
		assert.Equal(t, "Featuring cat, cats, dog and 1 more topics", output.MetaDescription)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		_, output, err := server.handleExtractTags(ctx, nil, ExtractTagsInput{Text: "Cats; Dogs", Delimiter: ";"})
		require.NoError(t, err)
		assert.Equal(t, 4, output.Count)
	})

	t.Run("escaped tab delimiter", func(t *testing.T) {
		_, output, err := server.handleExtractTags(ctx, nil, ExtractTagsInput{Text: "cat\tdog", Delimiter: `\t`})
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "cats", "dog", "dogs"}, output.Tags)
	})

	t.Run("empty text yields empty output", func(t *testing.T) {
		_, output, err := server.handleExtractTags(ctx, nil, ExtractTagsInput{Text: ""})
		require.NoError(t, err)
		assert.Empty(t, output.Tags)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Display)
		assert.Empty(t, output.MetaDescription)
	})

	t.Run("uses configured delimiter", func(t *testing.T) {
		ports := newTestPorts()
		require.NoError(t, ports.Settings.Set(services.KeyDelimiter, "|"))
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleExtractTags(ctx, nil, ExtractTagsInput{Text: "a b|c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a b", "a bs", "a-b", "ab", "c", "cs"}, output.Tags)
	})
}

func TestServer_handleProcessColumn(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	const csvData = "Title,Topics\nFirst,\"Cats, Dogs\"\nSecond,Dogs\nThird,NA\n"

	t.Run("processes column", func(t *testing.T) {
		_, output, err := server.handleProcessColumn(ctx, nil, ProcessColumnInput{CSV: csvData, Column: "Topics"})
		require.NoError(t, err)

		assert.Equal(t, "Topics", output.Column)
		assert.Equal(t, []string{"cat", "cats", "dog", "dogs"}, output.Tags)
		assert.Equal(t, 4, output.Count)
		assert.Equal(t, []string{"cat", "cats", "dog", "dogs"}, output.Primary)
		assert.Empty(t, output.LongTail)
		assert.Equal(t, []string{
			"Featuring cat, cats, dog and 1 more topics",
			"Featuring dog, dogs",
		}, output.MetaDescriptions)
	})

	t.Run("bucket sizes follow settings", func(t *testing.T) {
		ports := newTestPorts()
		require.NoError(t, ports.Settings.Set(services.KeyPrimary, "1"))
		require.NoError(t, ports.Settings.Set(services.KeyLongTail, "2"))
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleProcessColumn(ctx, nil, ProcessColumnInput{CSV: csvData, Column: "Topics"})
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, output.Primary)
		assert.Equal(t, []string{"cats", "dog"}, output.LongTail)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, _, err := server.handleProcessColumn(ctx, nil, ProcessColumnInput{CSV: csvData, Column: "Nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrColumnNotFound)
		assert.Contains(t, err.Error(), "Title, Topics")
	})

	t.Run("empty csv has no columns", func(t *testing.T) {
		_, _, err := server.handleProcessColumn(ctx, nil, ProcessColumnInput{CSV: "", Column: "Topics"})
		assert.ErrorIs(t, err, domain.ErrColumnNotFound)
	})
}

func TestServer_handleFormatTags(t *testing.T) {
	server := newTestServer(t)

	_, output, err := server.handleFormatTags(context.Background(), nil, TagsInput{Tags: []string{"b", "a", "a"}})
	require.NoError(t, err)
	assert.Equal(t, "a, b | 2 relevant keywords", output.Display)

	_, output, err = server.handleFormatTags(context.Background(), nil, TagsInput{})
	require.NoError(t, err)
	assert.Empty(t, output.Display)
}

func TestServer_handleMetaDescription(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{name: "empty", tags: nil, expected: ""},
		{name: "two tags", tags: []string{"b", "a"}, expected: "Featuring a, b"},
		{name: "five tags", tags: []string{"e", "d", "c", "b", "a"}, expected: "Featuring a, b, c and 2 more topics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleMetaDescription(context.Background(), nil, TagsInput{Tags: tt.tags})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output.MetaDescription)
		})
	}
}
