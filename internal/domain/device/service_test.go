package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, name, key string) (Device, error) {
	args := m.Called(ctx, userID, name, key)
	return args.Get(0).(Device), args.Error(1)
}

func (m *MockRepository) FindByKey(ctx context.Context, key string) (Device, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(Device), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Device, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Device), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, deviceID int) error {
	args := m.Called(ctx, userID, deviceID)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	userID := 7
	name := "kindle"

	mockRepo.On("Create", mock.Anything, userID, name,
		mock.MatchedBy(func(key string) bool { return len(key) == 32 }),
	).Return(Device{ID: 1, UserID: userID, Name: name, Key: "k"}, nil)

	d, err := service.Register(context.Background(), userID, name)
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_UniqueKeys(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	seen := map[string]bool{}
	mockRepo.On("Create", mock.Anything, 7, mock.AnythingOfType("string"),
		mock.MatchedBy(func(key string) bool {
			if seen[key] {
				return false
			}
			seen[key] = true
			return true
		}),
	).Return(Device{}, nil)

	for i := 0; i < 10; i++ {
		_, err := service.Register(context.Background(), 7, "tablet")
		require.NoError(t, err)
	}
}

func TestService_Register_EmptyName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Register(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Register_NameTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, 7, "kindle", mock.AnythingOfType("string")).
		Return(Device{}, ErrNameTaken)

	_, err := service.Register(context.Background(), 7, "kindle")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestService_ResolveKey(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	d := Device{ID: 3, UserID: 7, Name: "kindle", Key: "abc"}
	mockRepo.On("FindByKey", mock.Anything, "abc").Return(d, nil)

	got, err := service.ResolveKey(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestService_ResolveKey_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.ResolveKey(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertNotCalled(t, "FindByKey")
}
