package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/snippet"
)

type SnippetRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSnippetRepository(db *Storage, log *slog.Logger) *SnippetRepository {
	return &SnippetRepository{
		db:  db,
		log: log,
	}
}

func (r *SnippetRepository) Create(ctx context.Context, snip snippet.Snippet) (snippet.Snippet, error) {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO snippets (user_id, source_id, time, duration, text)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		snip.UserID, snip.SourceID, snip.Time, snip.Duration, snip.Text).
		Scan(&snip.ID, &snip.CreatedAt)
	if err != nil {
		return snippet.Snippet{}, err
	}
	return snip, nil
}

func (r *SnippetRepository) ListBySource(ctx context.Context, sourceID int, since *time.Time) ([]snippet.Snippet, error) {
	// Фильтр по created_at (времени вставки), порядок по смещению в медиа.
	// Это разные понятия времени, объединять их нельзя.
	query := `SELECT id, user_id, source_id, time, duration, text, created_at
              FROM snippets WHERE source_id = $1`
	args := []any{sourceID}
	if since != nil {
		query += ` AND created_at > $2`
		args = append(args, *since)
	}
	query += ` ORDER BY time, id`

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snips []snippet.Snippet
	for rows.Next() {
		var s snippet.Snippet
		if err := rows.Scan(&s.ID, &s.UserID, &s.SourceID, &s.Time, &s.Duration, &s.Text, &s.CreatedAt); err != nil {
			return nil, err
		}
		snips = append(snips, s)
	}

	return snips, rows.Err()
}

func (r *SnippetRepository) UpdateText(ctx context.Context, userID, snippetID int, text string) (snippet.Snippet, error) {
	var s snippet.Snippet
	err := r.db.Pool().QueryRow(ctx,
		`UPDATE snippets SET text = $1
         WHERE id = $2 AND user_id = $3
         RETURNING id, user_id, source_id, time, duration, text, created_at`,
		text, snippetID, userID).
		Scan(&s.ID, &s.UserID, &s.SourceID, &s.Time, &s.Duration, &s.Text, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, snippet.ErrNotFound
		}
		return s, err
	}
	return s, nil
}

func (r *SnippetRepository) Delete(ctx context.Context, userID, snippetID int) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM snippets WHERE id = $1 AND user_id = $2`, snippetID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return snippet.ErrNotFound
	}
	return nil
}

func (r *SnippetRepository) DeleteBySource(ctx context.Context, sourceID int) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM snippets WHERE source_id = $1`, sourceID)
	return err
}
