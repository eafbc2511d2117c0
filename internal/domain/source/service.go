package source

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// SnippetRemover удаляет все сниппеты источника. Реализуется репозиторием
// сниппетов; интерфейс объявлен здесь, чтобы не тянуть пакет snippet.
type SnippetRemover interface {
	DeleteBySource(ctx context.Context, sourceID int) error
}

type Servicer interface {
	FindOrCreate(ctx context.Context, rawURL string) (Source, error)
	Find(ctx context.Context, id int) (Source, error)
	ListForUser(ctx context.Context, userID int) ([]Source, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo     Repository
	snippets SnippetRemover
	log      *slog.Logger
}

func NewService(repo Repository, snippets SnippetRemover, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		snippets: snippets,
		log:      log,
	}
}

// FindOrCreate ищет источник по URL и создает его при отсутствии.
// Источники никогда не дублируются.
func (s *Service) FindOrCreate(ctx context.Context, rawURL string) (Source, error) {
	src, err := s.repo.FindByURL(ctx, rawURL)
	if err == nil {
		return src, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Source{}, fmt.Errorf("find source by url: %w", err)
	}

	src, err = s.repo.Create(ctx, Metadata(rawURL))
	if err != nil {
		return Source{}, fmt.Errorf("create source: %w", err)
	}

	s.log.Info("source created", "source_id", src.ID, "provider", src.Provider)
	return src, nil
}

func (s *Service) Find(ctx context.Context, id int) (Source, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]Source, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete удаляет источник в два явных шага: сначала все его сниппеты, затем
// сам источник. Записи синхронизации не трогаются: устаревшая запись на
// удаленный источник допустима, экспорт по ней вернет NotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.snippets.DeleteBySource(ctx, id); err != nil {
		return fmt.Errorf("delete source snippets: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	return nil
}
