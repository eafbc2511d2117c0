package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipmark/internal/domain/snippet"
	"snipmark/internal/domain/source"
)

func talkSource() source.Source {
	return source.Source{
		ID:       1,
		URL:      "https://x/1",
		Title:    "Talk",
		ThumbURL: "https://x/1/thumb.jpg",
	}
}

func TestRender_FullDocument(t *testing.T) {
	src := talkSource()
	// Порядок рендера — по смещению, независимо от порядка вставки
	snips := []snippet.Snippet{
		{ID: 2, Time: 10, Text: "setup"},
		{ID: 1, Time: 30, Text: "  intro"},
	}

	got := Render(src, snips, Exclusions{})

	want := "# Talk\n\n" +
		"[Talk](https://x/1)\n\n" +
		"![thumbnail](https://x/1/thumb.jpg)\n\n" +
		"setup [10](https://x/1?t=10)\n\n" +
		"intro [30](https://x/1?t=30)\n\n"
	assert.Equal(t, want, got)
}

func TestRender_Deterministic(t *testing.T) {
	src := talkSource()
	snips := []snippet.Snippet{
		{ID: 2, Time: 10, Text: "setup"},
		{ID: 1, Time: 30, Text: "  intro"},
	}

	first := Render(src, snips, Exclusions{Thumbnail: true})
	second := Render(src, snips, Exclusions{Thumbnail: true})

	assert.Equal(t, first, second)
}

func TestRender_OrderPreserved(t *testing.T) {
	src := talkSource()
	snips := []snippet.Snippet{
		{ID: 3, Time: 5, Text: "a"},
		{ID: 1, Time: 20, Text: "b"},
		{ID: 2, Time: 90, Text: "c"},
	}

	got := Render(src, snips, Exclusions{Title: true, Thumbnail: true})

	posA := strings.Index(got, "a [5]")
	posB := strings.Index(got, "b [20]")
	posC := strings.Index(got, "c [90]")
	require.True(t, posA >= 0 && posB >= 0 && posC >= 0)
	assert.Less(t, posA, posB)
	assert.Less(t, posB, posC)
}

func TestRender_Exclusions(t *testing.T) {
	src := talkSource()
	snips := []snippet.Snippet{{ID: 1, Time: 30, Text: "intro"}}

	t.Run("exclude title", func(t *testing.T) {
		got := Render(src, snips, Exclusions{Title: true})

		// Заголовок и ссылка уходят вместе, превью и сниппеты остаются
		assert.NotContains(t, got, "# Talk")
		assert.NotContains(t, got, "[Talk](https://x/1)")
		assert.Contains(t, got, "![thumbnail](https://x/1/thumb.jpg)")
		assert.Contains(t, got, "intro [30](https://x/1?t=30)")
	})

	t.Run("exclude thumbnail", func(t *testing.T) {
		got := Render(src, snips, Exclusions{Thumbnail: true})

		assert.Contains(t, got, "# Talk")
		assert.NotContains(t, got, "![thumbnail]")
		assert.Contains(t, got, "intro [30]")
	})

	t.Run("exclude both with no snippets", func(t *testing.T) {
		got := Render(src, nil, Exclusions{Title: true, Thumbnail: true})
		assert.Empty(t, got)
	})
}

func TestRender_NoSnippets(t *testing.T) {
	src := talkSource()

	got := Render(src, nil, Exclusions{})

	// Пустое окно — это не ошибка, рендерится только шапка
	want := "# Talk\n\n" +
		"[Talk](https://x/1)\n\n" +
		"![thumbnail](https://x/1/thumb.jpg)\n\n"
	assert.Equal(t, want, got)
}

func TestRender_LeadingWhitespaceStripped(t *testing.T) {
	src := talkSource()
	snips := []snippet.Snippet{{ID: 1, Time: 0, Text: "\t\n  padded text"}}

	got := Render(src, snips, Exclusions{Title: true, Thumbnail: true})

	assert.Equal(t, "padded text [0](https://x/1?t=0)\n\n", got)
}

func TestParseExclusions(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  Exclusions
	}{
		{name: "empty", items: nil, want: Exclusions{}},
		{name: "title only", items: []string{"title"}, want: Exclusions{Title: true}},
		{name: "both", items: []string{"title", "thumbnail"}, want: Exclusions{Title: true, Thumbnail: true}},
		{name: "unknown ignored", items: []string{"header", "title"}, want: Exclusions{Title: true}},
		{name: "whitespace trimmed", items: []string{" thumbnail "}, want: Exclusions{Thumbnail: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExclusions(tt.items))
		})
	}
}
