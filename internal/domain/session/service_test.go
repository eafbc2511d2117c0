package session

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := 42

	// Хранится sha256-хэш токена, не сам токен
	mockRepo.On("Create", mock.Anything, userID,
		mock.MatchedBy(func(hash string) bool { return len(hash) == 64 }),
		mock.MatchedBy(func(at time.Time) bool { return at.After(time.Now()) }),
	).Return(nil)

	token, err := service.Create(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Токен — валидный base64
	_, err = base64.URLEncoding.DecodeString(token)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Validate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	token := "some-token"
	hash := sha256.Sum256([]byte(token))

	mockRepo.On("Validate", mock.Anything, hex.EncodeToString(hash[:])).Return(42, nil)

	userID, err := service.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	mockRepo.AssertExpectations(t)
}
