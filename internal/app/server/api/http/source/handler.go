package source

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/app/server/api/http/middleware/auth"
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/source"
)

type Handler struct {
	sources    source.Servicer
	exports    export.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(sources source.Servicer, exports export.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		sources:    sources,
		exports:    exports,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.markdownOp(), h.markdown)
	huma.Register(api, h.deleteOp(), h.delete)
}

// markdown отдает полный документ источника. Веб-маршрут отметку
// синхронизации не читает и не двигает.
func (h *Handler) markdown(ctx context.Context, input *markdownInput) (*markdownOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	excl := export.ParseExclusions(strings.Split(input.Exclude, ","))

	doc, err := h.exports.Export(ctx, userID, input.ID, false, excl)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, huma.Error404NotFound("Source not found")
		}
		return nil, err
	}

	return &markdownOutput{
		ContentType: "text/markdown; charset=utf-8",
		Body:        []byte(doc),
	}, nil
}

// delete удаляет источник вместе со сниппетами. Записи синхронизации
// остаются и протухают, экспорт по ним отвечает 404.
func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.sources.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, huma.Error404NotFound("Source not found")
		}
		return nil, err
	}

	return &deleteOutput{Body: statusResponse{Status: "Ok"}}, nil
}
