package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type registerInput struct {
	Name string `validate:"required,min=1,max=80"`
}

type Servicer interface {
	Register(ctx context.Context, userID int, name string) (Device, error)
	ResolveKey(ctx context.Context, key string) (Device, error)
	List(ctx context.Context, userID int) ([]Device, error)
	Remove(ctx context.Context, userID, deviceID int) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// Register создает устройство с новым непрозрачным ключом. Уникальность имени
// обеспечивается ограничением в БД, дубликат превращается в ErrNameTaken на
// уровне репозитория, частичное состояние не возникает.
func (s *Service) Register(ctx context.Context, userID int, name string) (Device, error) {
	if err := s.validate.Struct(registerInput{Name: name}); err != nil {
		return Device{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	key := strings.ReplaceAll(uuid.NewString(), "-", "")

	d, err := s.repo.Create(ctx, userID, name, key)
	if err != nil {
		return Device{}, err
	}

	s.log.Info("device registered", "user_id", userID, "device_id", d.ID)
	return d, nil
}

// ResolveKey находит устройство по ключу из заголовка. Неизвестный ключ — это
// ErrNotFound, а не паника на nil.
func (s *Service) ResolveKey(ctx context.Context, key string) (Device, error) {
	if key == "" {
		return Device{}, ErrNotFound
	}
	return s.repo.FindByKey(ctx, key)
}

func (s *Service) List(ctx context.Context, userID int) ([]Device, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, deviceID int) error {
	return s.repo.Delete(ctx, userID, deviceID)
}
