package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"snipmark/internal/app/server/api/http/middleware/devicekey"
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/source"
	"snipmark/internal/domain/sync"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Export(ctx context.Context, userID, sourceID int, incremental bool, excl export.Exclusions) (string, error) {
	args := m.Called(ctx, userID, sourceID, incremental, excl)
	return args.String(0), args.Error(1)
}

func (m *MockService) AcknowledgeSync(ctx context.Context, userID, sourceID int) (sync.Record, error) {
	args := m.Called(ctx, userID, sourceID)
	return args.Get(0).(sync.Record), args.Error(1)
}

func (m *MockService) ListSynced(ctx context.Context, userID int) ([]export.SourceExport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]export.SourceExport), args.Error(1)
}

func TestHandler_markdown(t *testing.T) {
	userID := 42
	authCtx := devicekey.WithUser(context.Background(), userID, 7)

	t.Run("full export by default", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Export", mock.Anything, userID, 1, false, export.Exclusions{}).
			Return("# Talk\n\n[Talk](https://x/1)\n\n", nil)

		out, err := h.markdown(authCtx, &markdownInput{ID: 1})

		assert.NoError(t, err)
		assert.Equal(t, "text/markdown; charset=utf-8", out.ContentType)
		assert.Equal(t, "# Talk\n\n[Talk](https://x/1)\n\n", string(out.Body))
		svc.AssertExpectations(t)
	})

	t.Run("latest flag and exclusions are forwarded", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Export", mock.Anything, userID, 1, true,
			export.Exclusions{Title: true, Thumbnail: true}).
			Return("", nil)

		_, err := h.markdown(authCtx, &markdownInput{
			ID:      1,
			Latest:  true,
			Exclude: "title, thumbnail",
		})

		assert.NoError(t, err)
		svc.AssertExpectations(t)
	})

	t.Run("deleted source is 404", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Export", mock.Anything, userID, 99, false, export.Exclusions{}).
			Return("", source.ErrNotFound)

		_, err := h.markdown(authCtx, &markdownInput{ID: 99})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Source not found")
	})

	t.Run("no device context is 401", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		_, err := h.markdown(context.Background(), &markdownInput{ID: 1})

		assert.Error(t, err)
		svc.AssertNotCalled(t, "Export")
	})
}

func TestHandler_ack(t *testing.T) {
	userID := 42
	authCtx := devicekey.WithUser(context.Background(), userID, 7)

	t.Run("returns updated record", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.On("AcknowledgeSync", mock.Anything, userID, 1).
			Return(sync.Record{ID: 5, UserID: userID, SourceID: 1, SyncedAt: at}, nil)

		out, err := h.ack(authCtx, &ackInput{ID: 1})

		assert.NoError(t, err)
		assert.Equal(t, 1, out.Body.SourceID)
		assert.Equal(t, at, out.Body.SyncedAt)
		svc.AssertExpectations(t)
	})

	t.Run("stale record over deleted source is 404", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("AcknowledgeSync", mock.Anything, userID, 99).
			Return(sync.Record{}, source.ErrNotFound)

		_, err := h.ack(authCtx, &ackInput{ID: 99})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Source not found")
	})
}

func TestHandler_list(t *testing.T) {
	userID := 42
	authCtx := devicekey.WithUser(context.Background(), userID, 7)

	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("ListSynced", mock.Anything, userID).
		Return([]export.SourceExport{
			{Source: source.Source{ID: 1, URL: "https://x/1", Title: "Talk"}},
		}, nil)

	out, err := h.list(authCtx, nil)

	assert.NoError(t, err)
	assert.Len(t, out.Body, 1)
	assert.Equal(t, "Talk", out.Body[0].Title)
	svc.AssertExpectations(t)
}
