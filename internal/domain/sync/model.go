package sync

import "time"

// Record — отметка синхронизации пары (пользователь, источник). На пару
// существует не более одной записи; повторное подтверждение двигает SyncedAt
// вперед в той же строке.
type Record struct {
	ID       int       `json:"id"`
	UserID   int       `json:"user_id"`
	SourceID int       `json:"source_id"`
	SyncedAt time.Time `json:"synced_at"`
}
