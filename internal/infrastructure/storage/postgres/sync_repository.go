package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/sync"
)

// SyncRepository хранит отметки синхронизации пар (пользователь, источник).
type SyncRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSyncRepository(db *Storage, log *slog.Logger) *SyncRepository {
	return &SyncRepository{
		db:  db,
		log: log,
	}
}

func (r *SyncRepository) Find(ctx context.Context, userID, sourceID int) (sync.Record, bool, error) {
	var rec sync.Record
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, user_id, source_id, synced_at
         FROM sync_records WHERE user_id = $1 AND source_id = $2`,
		userID, sourceID).
		Scan(&rec.ID, &rec.UserID, &rec.SourceID, &rec.SyncedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sync.Record{}, false, nil
		}
		return sync.Record{}, false, err
	}
	return rec, true, nil
}

// Upsert выполняется одним атомарным запросом поверх уникального индекса
// (user_id, source_id): конкурентные подтверждения для одной пары не могут
// создать вторую строку.
func (r *SyncRepository) Upsert(ctx context.Context, userID, sourceID int, at time.Time) (sync.Record, error) {
	var rec sync.Record
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO sync_records (user_id, source_id, synced_at)
         VALUES ($1, $2, $3)
         ON CONFLICT (user_id, source_id) DO UPDATE SET
             synced_at = EXCLUDED.synced_at
         RETURNING id, user_id, source_id, synced_at`,
		userID, sourceID, at).
		Scan(&rec.ID, &rec.UserID, &rec.SourceID, &rec.SyncedAt)
	if err != nil {
		return sync.Record{}, err
	}
	return rec, nil
}
