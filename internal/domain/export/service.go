package export

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"snipmark/internal/domain/snippet"
	"snipmark/internal/domain/source"
	"snipmark/internal/domain/sync"
)

// Sources — нужная экспорту часть сервиса источников.
type Sources interface {
	Find(ctx context.Context, id int) (source.Source, error)
	ListForUser(ctx context.Context, userID int) ([]source.Source, error)
}

// Selector — выборка сниппетов источника, опционально от отметки.
type Selector interface {
	Select(ctx context.Context, sourceID int, since *time.Time) ([]snippet.Snippet, error)
}

// SourceExport — источник со вложенными упорядоченными сниппетами.
type SourceExport struct {
	source.Source
	Snippets []snippet.Snippet `json:"snippets"`
}

type Servicer interface {
	Export(ctx context.Context, userID, sourceID int, incremental bool, excl Exclusions) (string, error)
	AcknowledgeSync(ctx context.Context, userID, sourceID int) (sync.Record, error)
	ListSynced(ctx context.Context, userID int) ([]SourceExport, error)
}

type Service struct {
	sources  Sources
	snippets Selector
	tracker  sync.Tracker
	now      func() time.Time
	log      *slog.Logger
}

func NewService(sources Sources, snippets Selector, tracker sync.Tracker, log *slog.Logger) *Service {
	return &Service{
		sources:  sources,
		snippets: snippets,
		tracker:  tracker,
		now:      time.Now,
		log:      log,
	}
}

// Export рендерит документ источника. При incremental окно отсчитывается от
// отметки пары (пользователь, источник); отсутствие отметки означает полный
// экспорт. Отметку экспорт не двигает — клиент подтверждает синхронизацию
// отдельным вызовом и может перечитывать то же окно сколько угодно.
func (s *Service) Export(ctx context.Context, userID, sourceID int, incremental bool, excl Exclusions) (string, error) {
	src, err := s.sources.Find(ctx, sourceID)
	if err != nil {
		return "", err
	}

	var since *time.Time
	if incremental {
		wm, found, err := s.tracker.Watermark(ctx, userID, sourceID)
		if err != nil {
			return "", fmt.Errorf("watermark: %w", err)
		}
		if found {
			since = &wm
		}
	}

	snips, err := s.snippets.Select(ctx, sourceID, since)
	if err != nil {
		return "", err
	}

	return Render(src, snips, excl), nil
}

// AcknowledgeSync двигает отметку пары на текущее время. Источник проверяется:
// устаревшая запись синхронизации на удаленный источник дает NotFound, а не
// новую отметку.
func (s *Service) AcknowledgeSync(ctx context.Context, userID, sourceID int) (sync.Record, error) {
	if _, err := s.sources.Find(ctx, sourceID); err != nil {
		return sync.Record{}, err
	}

	return s.tracker.Advance(ctx, userID, sourceID, s.now())
}

// ListSynced возвращает источники пользователя со вложенными сниппетами в
// порядке рендера.
func (s *Service) ListSynced(ctx context.Context, userID int) ([]SourceExport, error) {
	srcs, err := s.sources.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	result := make([]SourceExport, 0, len(srcs))
	for _, src := range srcs {
		snips, err := s.snippets.Select(ctx, src.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("select snippets for source %d: %w", src.ID, err)
		}
		result = append(result, SourceExport{Source: src, Snippets: snips})
	}

	return result, nil
}
