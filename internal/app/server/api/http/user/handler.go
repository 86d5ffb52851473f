package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passwordy/internal/domain/session"
	"passwordy/internal/domain/user"
)

const tokenType = "Bearer"

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &registerOutput{
		Body: RegisterResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Message:  "User registered successfully",
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, h.mapError(err)
	}

	token, err := h.session.Create(ctx, u.Username)
	if err != nil {
		h.log.Error("failed to issue token", "username", u.Username, "error", err)
		return nil, huma.Error500InternalServerError("failed to issue token")
	}

	return &loginOutput{
		Body: LoginResponse{
			Token:    token,
			Type:     tokenType,
			Username: u.Username,
			Email:    u.Email,
			Message:  "Login successful",
		},
	}, nil
}

func (h *Handler) mapError(err error) error {
	var de *user.DomainError
	msg := err.Error()
	if errors.As(err, &de) {
		msg = de.Error()
	}

	switch {
	case errors.Is(err, user.ErrWeakPassword), errors.Is(err, user.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(msg)
	case errors.Is(err, user.ErrAlreadyExists):
		return huma.Error409Conflict(msg)
	case errors.Is(err, user.ErrInvalidAuth):
		return huma.Error401Unauthorized("Invalid username or password")
	default:
		h.log.Error("user operation failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
