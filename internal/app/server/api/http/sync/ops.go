package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) markdownOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-markdown",
		Method:      http.MethodGet,
		Path:        "/api/source/{id}/markdown",
		Summary:     "Markdown документ источника для устройства",
		Description: "С latest=true возвращает только сниппеты новее отметки синхронизации.",
		Tags:        []string{"sync"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) ackOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-acknowledge",
		Method:      http.MethodPost,
		Path:        "/api/source/{id}/sync",
		Summary:     "Подтвердить синхронизацию источника",
		Description: "Двигает отметку пары (пользователь, источник) на текущее время сервера.",
		Tags:        []string{"sync"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-sources",
		Method:      http.MethodGet,
		Path:        "/api/sources",
		Summary:     "Источники пользователя со сниппетами",
		Tags:        []string{"sync"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}
