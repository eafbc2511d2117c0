package export

import (
	"strconv"
	"strings"
	"unicode"

	"snipmark/internal/domain/snippet"
	"snipmark/internal/domain/source"
)

// Exclusions — секции документа, которые по запросу клиента не рендерятся.
type Exclusions struct {
	Title     bool
	Thumbnail bool
}

// ParseExclusions разбирает значения query-параметра exclude. Неизвестные
// значения игнорируются.
func ParseExclusions(items []string) Exclusions {
	var excl Exclusions
	for _, item := range items {
		switch strings.TrimSpace(item) {
		case "title":
			excl.Title = true
		case "thumbnail":
			excl.Thumbnail = true
		}
	}
	return excl
}

// Render собирает markdown-документ источника. Чистая функция: одинаковый
// вход дает побайтово одинаковый выход. Порядок сниппетов определяется
// вызывающей стороной и не меняется.
func Render(src source.Source, snips []snippet.Snippet, excl Exclusions) string {
	var b strings.Builder

	if !excl.Title {
		b.WriteString("# ")
		b.WriteString(src.Title)
		b.WriteString("\n\n")
		b.WriteString("[")
		b.WriteString(src.Title)
		b.WriteString("](")
		b.WriteString(src.URL)
		b.WriteString(")\n\n")
	}

	if !excl.Thumbnail {
		b.WriteString("![thumbnail](")
		b.WriteString(src.ThumbURL)
		b.WriteString(")\n\n")
	}

	for _, snip := range snips {
		offset := strconv.Itoa(snip.Time)
		b.WriteString(strings.TrimLeftFunc(snip.Text, unicode.IsSpace))
		b.WriteString(" [")
		b.WriteString(offset)
		b.WriteString("](")
		b.WriteString(src.URL)
		b.WriteString("?t=")
		b.WriteString(offset)
		b.WriteString(")\n\n")
	}

	return b.String()
}
