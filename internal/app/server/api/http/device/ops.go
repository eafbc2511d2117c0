package device

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "devices-list",
		Method:      http.MethodGet,
		Path:        "/devices",
		Summary:     "Список устройств пользователя",
		Tags:        []string{"devices"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "devices-create",
		Method:      http.MethodPost,
		Path:        "/devices",
		Summary:     "Зарегистрировать устройство",
		Description: "Выдает непрозрачный ключ устройства для доступа к API экспорта.",
		Tags:        []string{"devices"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "devices-delete",
		Method:      http.MethodDelete,
		Path:        "/devices/{id}",
		Summary:     "Удалить устройство",
		Tags:        []string{"devices"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
