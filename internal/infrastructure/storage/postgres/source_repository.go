package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/source"
)

type SourceRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSourceRepository(db *Storage, log *slog.Logger) *SourceRepository {
	return &SourceRepository{
		db:  db,
		log: log,
	}
}

func (r *SourceRepository) Create(ctx context.Context, src source.Source) (source.Source, error) {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO sources (url, title, thumb_url, provider)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		src.URL, src.Title, src.ThumbURL, src.Provider).Scan(&src.ID)
	if err != nil {
		return source.Source{}, err
	}
	return src, nil
}

func (r *SourceRepository) FindByID(ctx context.Context, id int) (source.Source, error) {
	var src source.Source
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, url, COALESCE(title, ''), COALESCE(thumb_url, ''), COALESCE(provider, '')
         FROM sources WHERE id = $1`, id).
		Scan(&src.ID, &src.URL, &src.Title, &src.ThumbURL, &src.Provider)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return src, source.ErrNotFound
		}
		return src, err
	}
	return src, nil
}

func (r *SourceRepository) FindByURL(ctx context.Context, url string) (source.Source, error) {
	var src source.Source
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, url, COALESCE(title, ''), COALESCE(thumb_url, ''), COALESCE(provider, '')
         FROM sources WHERE url = $1`, url).
		Scan(&src.ID, &src.URL, &src.Title, &src.ThumbURL, &src.Provider)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return src, source.ErrNotFound
		}
		return src, err
	}
	return src, nil
}

func (r *SourceRepository) ListByUser(ctx context.Context, userID int) ([]source.Source, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT s.id, s.url, COALESCE(s.title, ''), COALESCE(s.thumb_url, ''), COALESCE(s.provider, '')
         FROM sources s
         JOIN snippets sn ON sn.source_id = s.id
         WHERE sn.user_id = $1
         GROUP BY s.id
         ORDER BY MAX(sn.created_at) DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []source.Source
	for rows.Next() {
		var src source.Source
		if err := rows.Scan(&src.ID, &src.URL, &src.Title, &src.ThumbURL, &src.Provider); err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

func (r *SourceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM sources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return source.ErrNotFound
	}
	return nil
}
