package source

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) markdownOp() huma.Operation {
	return huma.Operation{
		OperationID: "source-markdown",
		Method:      http.MethodGet,
		Path:        "/source/{id}/markdown",
		Summary:     "Markdown документ источника",
		Tags:        []string{"sources"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "source-delete",
		Method:      http.MethodDelete,
		Path:        "/source/{id}",
		Summary:     "Удалить источник со сниппетами",
		Tags:        []string{"sources"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
