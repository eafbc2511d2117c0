package snippet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/source"
)

type CreateRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Time     int    `json:"time" validate:"gte=0"`
	Duration int    `json:"duration" validate:"gt=0"`
	Text     string `json:"text" validate:"required"`
}

type Servicer interface {
	Create(ctx context.Context, userID int, req CreateRequest) (Snippet, error)
	Select(ctx context.Context, sourceID int, since *time.Time) ([]Snippet, error)
	UpdateText(ctx context.Context, userID, snippetID int, text string) (Snippet, error)
	Delete(ctx context.Context, userID, snippetID int) error
}

type Service struct {
	repo     Repository
	sources  source.Servicer
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, sources source.Servicer, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sources:  sources,
		validate: validator.New(),
		log:      log,
	}
}

// Create валидирует вход, находит или создает источник по URL и сохраняет
// сниппет. Невалидный вход отсекается до каких-либо записей в хранилище.
func (s *Service) Create(ctx context.Context, userID int, req CreateRequest) (Snippet, error) {
	if err := s.validate.Struct(req); err != nil {
		return Snippet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	src, err := s.sources.FindOrCreate(ctx, req.URL)
	if err != nil {
		return Snippet{}, fmt.Errorf("resolve source: %w", err)
	}

	snip, err := s.repo.Create(ctx, Snippet{
		UserID:   userID,
		SourceID: src.ID,
		Time:     req.Time,
		Duration: req.Duration,
		Text:     req.Text,
	})
	if err != nil {
		return Snippet{}, fmt.Errorf("create snippet: %w", err)
	}

	s.log.Info("snippet created", "snippet_id", snip.ID, "source_id", src.ID)
	return snip, nil
}

// Select возвращает сниппеты источника для рендера. Фильтр since сравнивает
// время вставки (created_at), а не смещение в медиа: поздно добавленный
// сниппет с ранним смещением все равно попадет в следующее инкрементальное
// окно. Порядок всегда по смещению, при равенстве — по id.
func (s *Service) Select(ctx context.Context, sourceID int, since *time.Time) ([]Snippet, error) {
	snips, err := s.repo.ListBySource(ctx, sourceID, since)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}

	sort.SliceStable(snips, func(i, j int) bool {
		if snips[i].Time != snips[j].Time {
			return snips[i].Time < snips[j].Time
		}
		return snips[i].ID < snips[j].ID
	})

	return snips, nil
}

func (s *Service) UpdateText(ctx context.Context, userID, snippetID int, text string) (Snippet, error) {
	if text == "" {
		return Snippet{}, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	return s.repo.UpdateText(ctx, userID, snippetID, text)
}

func (s *Service) Delete(ctx context.Context, userID, snippetID int) error {
	return s.repo.Delete(ctx, userID, snippetID)
}
