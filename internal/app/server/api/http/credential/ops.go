package credential

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-list",
		Method:      http.MethodGet,
		Path:        "/api/passwords",
		Summary:     "Список записей владельца",
		Tags:        []string{"passwords"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "credentials-create",
		Method:        http.MethodPost,
		Path:          "/api/passwords",
		Summary:       "Создать запись",
		Tags:          []string{"passwords"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-get",
		Method:      http.MethodGet,
		Path:        "/api/passwords/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"passwords"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-update",
		Method:      http.MethodPut,
		Path:        "/api/passwords/{id}",
		Summary:     "Обновить запись",
		Description: "Full replacement of label, secret and metadata",
		Tags:        []string{"passwords"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "credentials-delete",
		Method:        http.MethodDelete,
		Path:          "/api/passwords/{id}",
		Summary:       "Удалить запись",
		Tags:          []string{"passwords"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) revealOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-reveal",
		Method:      http.MethodPost,
		Path:        "/api/passwords/{id}/decrypt",
		Summary:     "Расшифровать секрет",
		Tags:        []string{"passwords"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) categoriesOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-categories",
		Method:      http.MethodGet,
		Path:        "/api/password/categories",
		Summary:     "Список категорий",
		Tags:        []string{"passwords"},
		Middlewares: h.public,
	}
}
