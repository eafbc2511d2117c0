package snippet

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/app/server/api/http/middleware/auth"
	"snipmark/internal/domain/snippet"
)

type Handler struct {
	service    snippet.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service snippet.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

// create принимает URL источника, а не его ID: источник находится или
// заводится по URL внутри сервиса, клиенту не нужен отдельный запрос.
func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	sn, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		if errors.Is(err, snippet.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &createOutput{Body: sn}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	sn, err := h.service.UpdateText(ctx, userID, input.ID, input.Body.Text)
	if err != nil {
		switch {
		case errors.Is(err, snippet.ErrNotFound):
			return nil, huma.Error404NotFound("Snippet not found")
		case errors.Is(err, snippet.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	return &updateOutput{Body: sn}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, snippet.ErrNotFound) {
			return nil, huma.Error404NotFound("Snippet not found")
		}
		return nil, err
	}

	return &deleteOutput{Body: statusResponse{Status: "Ok"}}, nil
}
