package sync

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Tracker interface {
	// Watermark возвращает отметку последней синхронизации пары.
	// found=false означает "никогда не синхронизировалась" — это не то же
	// самое, что нулевое время.
	Watermark(ctx context.Context, userID, sourceID int) (time.Time, bool, error)
	Advance(ctx context.Context, userID, sourceID int, at time.Time) (Record, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Watermark(ctx context.Context, userID, sourceID int) (time.Time, bool, error) {
	rec, found, err := s.repo.Find(ctx, userID, sourceID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("find sync record: %w", err)
	}
	if !found {
		return time.Time{}, false, nil
	}
	return rec.SyncedAt, true, nil
}

func (s *Service) Advance(ctx context.Context, userID, sourceID int, at time.Time) (Record, error) {
	rec, err := s.repo.Upsert(ctx, userID, sourceID, at)
	if err != nil {
		return Record{}, fmt.Errorf("advance watermark: %w", err)
	}

	s.log.Debug("watermark advanced",
		"user_id", userID, "source_id", sourceID, "synced_at", rec.SyncedAt)
	return rec, nil
}
