package generator

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passwordy/internal/domain/generator"
)

type Generator interface {
	Password(length int, symbols bool) (string, error)
	PIN(length int) (string, error)
}

type Handler struct {
	gen        Generator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(gen Generator, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		gen:        gen,
		log:        log.With("component", "generator_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.passwordOp(), h.password)
	huma.Register(api, h.pinOp(), h.pin)
}

func (h *Handler) password(_ context.Context, input *passwordInput) (*passwordOutput, error) {
	length := generator.DefaultPasswordLength
	if input.Body.Length != nil {
		length = *input.Body.Length
	}
	symbols := true
	if input.Body.IncludeSymbols != nil {
		symbols = *input.Body.IncludeSymbols
	}

	value, err := h.gen.Password(length, symbols)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &passwordOutput{Body: PasswordResponse{Password: value}}, nil
}

func (h *Handler) pin(_ context.Context, input *pinInput) (*pinOutput, error) {
	length := generator.DefaultPINLength
	if input.Body.Length != nil {
		length = *input.Body.Length
	}

	value, err := h.gen.PIN(length)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &pinOutput{Body: PINResponse{PIN: value}}, nil
}

func (h *Handler) mapError(err error) error {
	if errors.Is(err, generator.ErrInvalidParameter) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("generation failed", "error", err)
	return huma.Error500InternalServerError("internal error")
}
