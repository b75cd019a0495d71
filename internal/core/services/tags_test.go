package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/normalisers/seo"
	"github.com/custodia-labs/tagsmith/internal/variations"
)

func newTestTagService() *TagService {
	return NewTagService(seo.New(), variations.DefaultPipeline())
}

func TestTagService_ExtractTags(t *testing.T) {
	svc := newTestTagService()

	t.Run("missing field yields empty set", func(t *testing.T) {
		for _, delim := range []string{",", ";", ""} {
			assert.Equal(t, 0, svc.ExtractTags(domain.Missing(), delim).Len())
		}
	})

	t.Run("cats and dogs", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("Cats, Dogs"), ",")

		for _, want := range []string{"cats", "cat", "dogs", "dog"} {
			assert.True(t, tags.Has(want), "missing %q", want)
		}
		assert.Equal(t, 4, tags.Len())
	})

	t.Run("blank pieces yield empty set", func(t *testing.T) {
		assert.Equal(t, 0, svc.ExtractTags(domain.Text("  , ,"), ",").Len())
	})

	t.Run("empty text yields empty set", func(t *testing.T) {
		assert.Equal(t, 0, svc.ExtractTags(domain.Text(""), ",").Len())
	})

	t.Run("pieces that clean to nothing are dropped", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("!!!, cat"), ",")

		assert.Equal(t, []string{"cat", "cats"}, tags.Sorted())
	})

	t.Run("duplicates collapse before expansion", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("Cat, cat ,CAT"), ",")

		assert.Equal(t, []string{"cat", "cats"}, tags.Sorted())
	})

	t.Run("multi-word tag variations", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("Machine Learning"), ",")

		assert.Equal(t, []string{
			"machine learning", "machine learnings", "machine-learning", "machinelearning",
		}, tags.Sorted())
	})

	t.Run("delimiter is literal, not a pattern", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("a.b|c"), "|")

		assert.True(t, tags.Has("ab"))
		assert.True(t, tags.Has("c"))
	})

	t.Run("multi-character delimiter", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("red :: green"), "::")

		assert.Equal(t, []string{"green", "greens", "red", "reds"}, tags.Sorted())
	})

	t.Run("empty delimiter keeps the field whole", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("red, green"), "")

		assert.Equal(t, []string{"red green", "red greens", "red-green", "redgreen"}, tags.Sorted())
	})

	t.Run("lone s never produces an empty tag", func(t *testing.T) {
		tags := svc.ExtractTags(domain.Text("s"), ",")

		assert.Equal(t, []string{"s"}, tags.Sorted())
		assert.False(t, tags.Has(""))
	})
}

func TestTagService_NormaliseAndExpand(t *testing.T) {
	svc := newTestTagService()

	assert.Equal(t, "big data", svc.Normalise("  Big   DATA! "))
	assert.True(t, svc.Expand("big data").Has("big data"))
	assert.NotZero(t, svc.Expand("x").Len())
}

func TestTagService_ProcessColumn(t *testing.T) {
	svc := newTestTagService()

	t.Run("single row", func(t *testing.T) {
		tbl := domain.NewTable("Tags")
		tbl.AppendRow(domain.Text("x,y"))

		result := svc.ProcessColumn(tbl, "Tags", ",")

		assert.Equal(t, []string{"x", "xs", "y", "ys"}, result.Tags)
		require.Len(t, result.MetaDescriptions, 1)
		assert.Equal(t, "Featuring x, xs, y and 1 more topics", result.MetaDescriptions[0])
	})

	t.Run("missing rows produce no meta entry", func(t *testing.T) {
		tbl := domain.NewTable("Tags", "Other")
		tbl.AppendRow(domain.Text("dog"), domain.Text("ignored"))
		tbl.AppendRow(domain.Missing(), domain.Text("ignored"))
		tbl.AppendRow(domain.Text("cat"), domain.Missing())

		result := svc.ProcessColumn(tbl, "Tags", ",")

		assert.Equal(t, []string{"cat", "cats", "dog", "dogs"}, result.Tags)
		assert.Equal(t, []string{"Featuring dog, dogs", "Featuring cat, cats"}, result.MetaDescriptions)
	})

	t.Run("meta uses the row's own tags", func(t *testing.T) {
		tbl := domain.NewTable("Tags")
		tbl.AppendRow(domain.Text("a, b"))
		tbl.AppendRow(domain.Text("c"))

		result := svc.ProcessColumn(tbl, "Tags", ",")

		assert.Equal(t, "Featuring c, cs", result.MetaDescriptions[1])
	})

	t.Run("present but blank row still gets an empty meta entry", func(t *testing.T) {
		tbl := domain.NewTable("Tags")
		tbl.AppendRow(domain.Text(" , "))

		result := svc.ProcessColumn(tbl, "Tags", ",")

		assert.Empty(t, result.Tags)
		assert.Equal(t, []string{""}, result.MetaDescriptions)
	})

	t.Run("tags are strictly ascending", func(t *testing.T) {
		tbl := domain.NewTable("Tags")
		tbl.AppendRow(domain.Text("Zebra, apple, Mango Tree"))
		tbl.AppendRow(domain.Text("apples, zebra"))

		result := svc.ProcessColumn(tbl, "Tags", ",")

		assert.True(t, sort.StringsAreSorted(result.Tags))
		for i := 1; i < len(result.Tags); i++ {
			assert.NotEqual(t, result.Tags[i-1], result.Tags[i])
		}
	})

	t.Run("unknown column yields empty result", func(t *testing.T) {
		tbl := domain.NewTable("Tags")
		tbl.AppendRow(domain.Text("x"))

		result := svc.ProcessColumn(tbl, "Nope", ",")

		assert.Empty(t, result.Tags)
		assert.Empty(t, result.MetaDescriptions)
	})

	t.Run("empty and nil tables", func(t *testing.T) {
		assert.Empty(t, svc.ProcessColumn(domain.NewTable("Tags"), "Tags", ",").Tags)
		assert.Empty(t, svc.ProcessColumn(nil, "Tags", ",").Tags)
	})
}

func TestTagService_FormatTagsForDisplay(t *testing.T) {
	svc := newTestTagService()

	assert.Equal(t, "", svc.FormatTagsForDisplay(domain.NewTagSet()))
	assert.Equal(t, "cat | 1 relevant keywords", svc.FormatTagsForDisplay(domain.NewTagSet("cat")))
	assert.Equal(t, "cat, cats, dog | 3 relevant keywords",
		svc.FormatTagsForDisplay(domain.NewTagSet("dog", "cats", "cat")))
}

func TestTagService_CreateMetaDescription(t *testing.T) {
	svc := newTestTagService()

	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"empty", nil, ""},
		{"one", []string{"cat"}, "Featuring cat"},
		{"two sorted", []string{"dog", "cat"}, "Featuring cat, dog"},
		{"three", []string{"c", "a", "b"}, "Featuring a, b, c"},
		{"four", []string{"a", "b", "c", "d"}, "Featuring a, b, c and 1 more topics"},
		{"many", []string{"e", "d", "c", "b", "a", "f"}, "Featuring a, b, c and 3 more topics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CreateMetaDescription(domain.NewTagSet(tt.tags...)))
		})
	}
}
