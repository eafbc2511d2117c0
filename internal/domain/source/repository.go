package source

import "context"

type Repository interface {
	Create(ctx context.Context, src Source) (Source, error)
	FindByID(ctx context.Context, id int) (Source, error)
	FindByURL(ctx context.Context, url string) (Source, error)
	// ListByUser возвращает источники, в которых у пользователя есть сниппеты,
	// свежие (по времени добавления сниппетов) впереди.
	ListByUser(ctx context.Context, userID int) ([]Source, error)
	Delete(ctx context.Context, id int) error
}
