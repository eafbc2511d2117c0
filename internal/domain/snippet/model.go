package snippet

import "time"

// Snippet — текстовая аннотация с привязкой ко времени внутри источника.
// Поле Time — смещение в медиа (по нему сортируется документ), CreatedAt —
// серверное время вставки (по нему считается инкрементальное окно).
type Snippet struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	SourceID  int       `json:"source_id"`
	Time      int       `json:"time"`
	Duration  int       `json:"duration"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
