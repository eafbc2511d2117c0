package snippet

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "snippets-create",
		Method:      http.MethodPost,
		Path:        "/snippets",
		Summary:     "Создать сниппет",
		Description: "Источник находится или создается по URL из тела запроса.",
		Tags:        []string{"snippets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "snippets-update",
		Method:      http.MethodPut,
		Path:        "/snippet/{id}",
		Summary:     "Обновить текст сниппета",
		Tags:        []string{"snippets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "snippets-delete",
		Method:      http.MethodDelete,
		Path:        "/snippet/{id}",
		Summary:     "Удалить сниппет",
		Tags:        []string{"snippets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
