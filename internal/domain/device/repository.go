package device

import "context"

type Repository interface {
	Create(ctx context.Context, userID int, name, key string) (Device, error)
	FindByKey(ctx context.Context, key string) (Device, error)
	ListByUser(ctx context.Context, userID int) ([]Device, error)
	Delete(ctx context.Context, userID, deviceID int) error
}
