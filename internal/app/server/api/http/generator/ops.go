package generator

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) passwordOp() huma.Operation {
	return huma.Operation{
		OperationID: "generate-password",
		Method:      http.MethodPost,
		Path:        "/api/password/generate",
		Summary:     "Сгенерировать пароль",
		Tags:        []string{"generator"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) pinOp() huma.Operation {
	return huma.Operation{
		OperationID: "generate-pin",
		Method:      http.MethodPost,
		Path:        "/api/password/generate-pin",
		Summary:     "Сгенерировать PIN",
		Tags:        []string{"generator"},
		Middlewares: h.middleware,
	}
}
