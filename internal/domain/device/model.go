package device

import "time"

// Device — клиентское устройство пользователя. Ключ устройства играет роль
// bearer-токена для API экспорта.
type Device struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"device_name"`
	Key       string    `json:"device_key"`
	CreatedAt time.Time `json:"created_at"`
}
