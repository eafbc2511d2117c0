package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const minPasswordLen = 4

type Servicer interface {
	Register(ctx context.Context, email, password string) (int, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (int, error) {
	if err := validateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return userID, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	var u User
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return u, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return u, ErrInvalidCredentials
	}

	return u, nil
}

func validateRegister(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
