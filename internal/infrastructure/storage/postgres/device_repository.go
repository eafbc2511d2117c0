package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/device"
)

type DeviceRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewDeviceRepository(db *Storage, log *slog.Logger) *DeviceRepository {
	return &DeviceRepository{
		db:  db,
		log: log,
	}
}

func (r *DeviceRepository) Create(ctx context.Context, userID int, name, key string) (device.Device, error) {
	var d device.Device
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO devices (user_id, device_name, device_key)
         VALUES ($1, $2, $3)
         RETURNING id, user_id, device_name, device_key, created_at`,
		userID, name, key).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Key, &d.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return d, device.ErrNameTaken
		}
		return d, err
	}
	return d, nil
}

func (r *DeviceRepository) FindByKey(ctx context.Context, key string) (device.Device, error) {
	var d device.Device
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, user_id, device_name, device_key, created_at
         FROM devices WHERE device_key = $1`, key).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Key, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return d, device.ErrNotFound
		}
		return d, err
	}
	return d, nil
}

func (r *DeviceRepository) ListByUser(ctx context.Context, userID int) ([]device.Device, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, device_name, device_key, created_at
         FROM devices WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Key, &d.CreatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return devices, rows.Err()
}

func (r *DeviceRepository) Delete(ctx context.Context, userID, deviceID int) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM devices WHERE id = $1 AND user_id = $2`, deviceID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return device.ErrNotFound
	}
	return nil
}
