package devicekey

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/device"
)

// HeaderName — заголовок с ключом устройства для API экспорта.
const HeaderName = "X-Api-Key"

type DeviceKey struct {
	devices device.Servicer
	log     *slog.Logger
}

func New(devices device.Servicer, log *slog.Logger) *DeviceKey {
	return &DeviceKey{
		devices: devices,
		log:     log.With("component", "devicekey middleware"),
	}
}

type contextKey string

const (
	userIDKey   contextKey = "deviceUserID"
	deviceIDKey contextKey = "deviceID"
)

// Middleware разрешает ключ устройства во владельца. Неизвестный или пустой
// ключ — 401, до хендлера запрос не доходит. Отметки и экспорт всегда
// привязаны к владельцу, а не к устройству: два устройства одного
// пользователя делят одну отметку на источник.
func (d *DeviceKey) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		key := ctx.Header(HeaderName)

		dev, err := d.devices.ResolveKey(ctx.Context(), key)
		if err != nil {
			d.log.Debug("device key rejected", "error", err)
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		newCtx := context.WithValue(ctx.Context(), userIDKey, dev.UserID)
		newCtx = context.WithValue(newCtx, deviceIDKey, dev.ID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func WithUser(ctx context.Context, userID, deviceID int) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, deviceIDKey, deviceID)
}

func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

func GetDeviceID(ctx context.Context) (int, bool) {
	deviceID, ok := ctx.Value(deviceIDKey).(int)
	return deviceID, ok
}
