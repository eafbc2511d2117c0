package source

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

func (m *MockRepository) Create(ctx context.Context, src Source) (Source, error) {
	args := m.Called(ctx, src)
	return args.Get(0).(Source), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (Source, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Source), args.Error(1)
}

func (m *MockRepository) FindByURL(ctx context.Context, url string) (Source, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(Source), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Source, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Source), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSnippetRemover struct {
	mock.Mock
}

func (m *MockSnippetRemover) DeleteBySource(ctx context.Context, sourceID int) error {
	args := m.Called(ctx, sourceID)
	return args.Error(0)
}

func TestService_FindOrCreate_Existing(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	existing := Source{ID: 5, URL: "https://youtu.be/abc"}
	mockRepo.On("FindByURL", mock.Anything, "https://youtu.be/abc").Return(existing, nil)

	src, err := service.FindOrCreate(context.Background(), "https://youtu.be/abc")
	require.NoError(t, err)
	assert.Equal(t, existing, src)

	// Повторного создания не происходит
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_FindOrCreate_New(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, slog.Default())

	url := "https://www.youtube.com/watch?v=abc123"

	mockRepo.On("FindByURL", mock.Anything, url).Return(Source{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(src Source) bool {
		return src.URL == url && src.Provider == "youtube" &&
			src.ThumbURL == "https://i.ytimg.com/vi/abc123/hqdefault.jpg"
	})).Return(Source{ID: 9, URL: url, Provider: "youtube"}, nil)

	src, err := service.FindOrCreate(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, 9, src.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_TwoStep(t *testing.T) {
	mockRepo := new(MockRepository)
	mockSnips := new(MockSnippetRemover)
	service := NewService(mockRepo, mockSnips, slog.Default())

	mockRepo.On("FindByID", mock.Anything, 5).Return(Source{ID: 5}, nil)
	mockSnips.On("DeleteBySource", mock.Anything, 5).Return(nil)
	mockRepo.On("Delete", mock.Anything, 5).Return(nil)

	err := service.Delete(context.Background(), 5)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockSnips.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockSnips := new(MockSnippetRemover)
	service := NewService(mockRepo, mockSnips, slog.Default())

	mockRepo.On("FindByID", mock.Anything, 404).Return(Source{}, ErrNotFound)

	err := service.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	mockSnips.AssertNotCalled(t, "DeleteBySource")
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestMetadata(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		provider string
		thumb    string
	}{
		{
			name:     "youtube watch url",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			provider: "youtube",
			thumb:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		},
		{
			name:     "short youtube url",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			provider: "youtube",
			thumb:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		},
		{
			name:     "vimeo",
			url:      "https://vimeo.com/12345",
			provider: "vimeo",
			thumb:    "",
		},
		{
			name:     "unknown host",
			url:      "https://example.org/article",
			provider: "example.org",
			thumb:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Metadata(tt.url)
			assert.Equal(t, tt.url, src.URL)
			assert.Equal(t, tt.url, src.Title)
			assert.Equal(t, tt.provider, src.Provider)
			assert.Equal(t, tt.thumb, src.ThumbURL)
		})
	}
}
