package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

func TestMissingMatcher_Defaults(t *testing.T) {
	m := NewMissingMatcher(nil)

	for _, v := range []string{"", "NA", "N/A", "NaN", "null", "None"} {
		assert.True(t, m.IsMissing(v), v)
	}
	assert.False(t, m.IsMissing("none"))
	assert.False(t, m.IsMissing(" "))
	assert.False(t, m.IsMissing("0"))
}

func TestMissingMatcher_Custom(t *testing.T) {
	m := NewMissingMatcher([]string{"-"})

	assert.Equal(t, domain.Missing(), m.Field("-"))
	assert.Equal(t, domain.Text(""), m.Field(""))
	assert.Equal(t, domain.Text("NA"), m.Field("NA"))
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"plain", []string{"a", "b"}, []string{"a", "b"}},
		{"bom", []string{"\ufeffTopics", "b"}, []string{"Topics", "b"}},
		{"blank", []string{"a", "", " "}, []string{"a", "Unnamed: 1", "Unnamed: 2"}},
		{"duplicates", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"duplicate clashes with existing", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Header(tt.in))
		})
	}
}

func TestBuild(t *testing.T) {
	records := [][]string{
		{"Topics", "Notes"},
		{"SEO, Marketing", "x"},
		{"NA"},
		{"a", "b", "extra"},
	}

	table, err := Build(context.Background(), records, NewMissingMatcher(nil))

	require.NoError(t, err)
	assert.Equal(t, []string{"Topics", "Notes"}, table.Columns)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, domain.Text("SEO, Marketing"), table.Rows[0][0])
	assert.Equal(t, domain.Missing(), table.Rows[1][0])
	assert.Equal(t, domain.Missing(), table.Rows[1][1])
	assert.Len(t, table.Rows[2], 2)
}

func TestBuild_Empty(t *testing.T) {
	table, err := Build(context.Background(), nil, NewMissingMatcher(nil))

	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Zero(t, table.Len())
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, [][]string{{"a"}, {"1"}}, NewMissingMatcher(nil))

	assert.ErrorIs(t, err, context.Canceled)
}
