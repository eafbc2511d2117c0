package sync

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/app/server/api/http/middleware/devicekey"
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/source"
)

// Handler обслуживает клиентов с ключом устройства: выгрузка markdown,
// подтверждение синхронизации, список источников со сниппетами.
type Handler struct {
	service    export.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service export.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.markdownOp(), h.markdown)
	huma.Register(api, h.ackOp(), h.ack)
	huma.Register(api, h.listOp(), h.list)
}

// markdown рендерит документ источника. latest=true сужает окно до сниппетов
// новее отметки пары (пользователь, источник); сама отметка здесь не
// двигается, клиент подтверждает ее отдельным POST после успешной записи.
func (h *Handler) markdown(ctx context.Context, input *markdownInput) (*markdownOutput, error) {
	userID, ok := devicekey.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	excl := export.ParseExclusions(strings.Split(input.Exclude, ","))

	doc, err := h.service.Export(ctx, userID, input.ID, input.Latest, excl)
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

func (h *Handler) ack(ctx context.Context, input *ackInput) (*ackOutput, error) {
	userID, ok := devicekey.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	rec, err := h.service.AcknowledgeSync(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, huma.Error404NotFound("Source not found")
		}
		return nil, err
	}

	return &ackOutput{Body: rec}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := devicekey.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	sources, err := h.service.ListSynced(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: sources}, nil
}
