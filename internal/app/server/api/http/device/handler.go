package device

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/app/server/api/http/middleware/auth"
	"snipmark/internal/domain/device"
)

type Handler struct {
	service    device.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service device.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	devices, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: devices}, nil
}

// create регистрирует устройство. Ключ показывается один раз в ответе —
// дальше клиент ходит с ним в заголовке X-Api-Key.
func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	d, err := h.service.Register(ctx, userID, input.Body.Name)
	if err != nil {
		switch {
		case errors.Is(err, device.ErrNameTaken):
			return nil, huma.Error409Conflict("Device name already exists")
		case errors.Is(err, device.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	return &createOutput{Body: d}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Remove(ctx, userID, input.ID); err != nil {
		if errors.Is(err, device.ErrNotFound) {
			return nil, huma.Error404NotFound("Device not found")
		}
		return nil, err
	}

	return &deleteOutput{Body: statusResponse{Status: "Ok"}}, nil
}
