package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

func TestTagsCmd_Use(t *testing.T) {
	assert.Equal(t, "tags <text>", tagsCmd.Use)
}

func TestTagsCmd_PrintsTags(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "", "tags", "Cats, Dogs")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Tags (4):\n  cat\n  cats\n  dog\n  dogs\n")
	assert.Contains(t, stdout, "Display: cat, cats, dog, dogs | 4 relevant keywords")
	assert.Contains(t, stdout, "Meta:    Featuring cat, cats, dog and 1 more topics")
}

func TestTagsCmd_JSON(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "", "tags", "Café Society", "--json")
	require.NoError(t, err)

	var out tagsOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, []string{"cafe society", "cafe societys", "cafe-society", "cafesociety"}, out.Tags)
	assert.Equal(t, "Featuring cafe society, cafe societys, cafe-society and 1 more topics", out.MetaDescription)
}

func TestTagsCmd_Delimiter(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "", "tags", "a|b", "-d", "|")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tags (4):")

	_, _, err = execute(t, "", "tags", "a|b", "-d", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDelimiter)
}

func TestTagsCmd_NoTags(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "", "tags", "!!!")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tags (0):")
}
