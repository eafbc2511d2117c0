package snippet

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, snip Snippet) (Snippet, error)
	// ListBySource возвращает сниппеты источника; при непустом since — только
	// созданные строго позже since.
	ListBySource(ctx context.Context, sourceID int, since *time.Time) ([]Snippet, error)
	UpdateText(ctx context.Context, userID, snippetID int, text string) (Snippet, error)
	Delete(ctx context.Context, userID, snippetID int) error
	DeleteBySource(ctx context.Context, sourceID int) error
}
