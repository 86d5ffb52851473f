package credential

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passwordy/internal/app/server/api/http/middleware/auth"
	"passwordy/internal/domain/credential"
)

type Handler struct {
	service     credential.Servicer
	log         *slog.Logger
	middleware  huma.Middlewares
	public      huma.Middlewares
	hideForeign bool
}

// NewHandler: mws применяются к операциям с записями (должны включать auth),
// public - к списку категорий. hideForeign отдает 404 вместо 403 на чужие записи.
func NewHandler(service credential.Servicer, log *slog.Logger, mws, public huma.Middlewares, hideForeign bool) *Handler {
	return &Handler{
		service:     service,
		log:         log.With("component", "credential_handler"),
		middleware:  mws,
		public:      public,
		hideForeign: hideForeign,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.categoriesOp(), h.categories)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.revealOp(), h.reveal)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	list, err := h.service.List(ctx, username)
	if err != nil {
		return nil, h.mapError(err)
	}

	out := &listOutput{Body: make([]CredentialResponse, 0, len(list))}
	for i := range list {
		out.Body = append(out.Body, toResponse(&list[i]))
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	c, err := h.service.Create(ctx, username, input.Body.toInput())
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(c)}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*output, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	c, err := h.service.Get(ctx, username, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(c)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	c, err := h.service.Update(ctx, username, input.ID, input.Body.toInput())
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, username, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return nil, nil
}

func (h *Handler) reveal(ctx context.Context, input *idInput) (*revealOutput, error) {
	username, ok := auth.GetUsername(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	r, err := h.service.Reveal(ctx, username, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &revealOutput{Body: RevealResponse{ID: r.ID, Label: r.Label, Password: r.Secret}}, nil
}

func (h *Handler) categories(_ context.Context, _ *struct{}) (*categoriesOutput, error) {
	return &categoriesOutput{Body: h.service.Categories()}, nil
}

// mapError переводит доменные ошибки в HTTP. Детали 5xx в ответ не попадают.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, credential.ErrNotFound):
		return huma.Error404NotFound("Password not found")
	case errors.Is(err, credential.ErrAccessDenied):
		if h.hideForeign {
			return huma.Error404NotFound("Password not found")
		}
		return huma.Error403Forbidden("Access denied")
	default:
		h.log.Error("credential operation failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
