package sync

import (
	"context"
	"time"
)

type Repository interface {
	// Find возвращает запись пары и false, если пара еще не синхронизировалась.
	Find(ctx context.Context, userID, sourceID int) (Record, bool, error)
	// Upsert атомарно создает либо обновляет запись пары. Две конкурентные
	// отметки не должны породить две строки — реализация обязана опираться на
	// уникальный индекс (user_id, source_id), а не на чтение перед записью.
	Upsert(ctx context.Context, userID, sourceID int, at time.Time) (Record, error)
}
