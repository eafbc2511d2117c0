package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/snippet"
	"snipmark/internal/domain/source"
)

// fakeSelector реализует контракт репозитория: в окно попадают только
// сниппеты, созданные строго позже since.
type fakeSelector struct {
	snips []snippet.Snippet
}

func (f *fakeSelector) Select(_ context.Context, sourceID int, since *time.Time) ([]snippet.Snippet, error) {
	var out []snippet.Snippet
	for _, s := range f.snips {
		if s.SourceID != sourceID {
			continue
		}
		if since != nil && !s.CreatedAt.After(*since) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func TestService_Export_IncrementalWindow(t *testing.T) {
	wm := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	before := wm.Add(-time.Hour)
	after := wm.Add(time.Hour)

	selector := &fakeSelector{snips: []snippet.Snippet{
		// Вставлен до отметки — уже синхронизирован
		{ID: 1, SourceID: 5, Time: 30, Text: "old", CreatedAt: before},
		// Вставлен точно в отметку — строгое неравенство, не попадает
		{ID: 2, SourceID: 5, Time: 40, Text: "boundary", CreatedAt: wm},
		// Вставлен после отметки, смещение раньше старых — все равно в окне
		{ID: 3, SourceID: 5, Time: 10, Text: "backfilled", CreatedAt: after},
	}}

	sources := new(MockSources)
	tracker := new(MockTracker)
	sources.On("Find", mock.Anything, 5).Return(source.Source{ID: 5, URL: "https://x/1"}, nil)
	tracker.On("Watermark", mock.Anything, 7, 5).Return(wm, true, nil)

	service := NewService(sources, selector, tracker, slog.Default())

	doc, err := service.Export(context.Background(), 7, 5, true, Exclusions{Title: true, Thumbnail: true})
	require.NoError(t, err)

	assert.Equal(t, "backfilled [10](https://x/1?t=10)\n\n", doc)
	assert.NotContains(t, doc, "old")
	assert.NotContains(t, doc, "boundary")
}
