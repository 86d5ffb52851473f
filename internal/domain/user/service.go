package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		s.log.Debug("username validation failed", "username", username, "error", err)
		return nil, &DomainError{Err: ErrInvalidInput, Message: err.Error(), Code: "invalid_username"}
	}
	if err := s.validator.ValidateEmail(email); err != nil {
		return nil, &DomainError{Err: ErrInvalidInput, Message: err.Error(), Code: "invalid_email"}
	}
	if err := s.validator.Validate(password).Err(); err != nil {
		s.log.Debug("master password rejected by policy", "username", username)
		return nil, err
	}
	if len(password) > MaxPasswordBytes {
		return nil, &DomainError{
			Err:     ErrInvalidInput,
			Message: fmt.Sprintf("master password must not exceed %d bytes", MaxPasswordBytes),
			Code:    "password_too_long",
		}
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, &DomainError{Err: ErrAlreadyExists, Message: "email is already in use", Code: "email_taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, &DomainError{Err: ErrAlreadyExists, Message: "username is already taken", Code: "username_taken"}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return u, nil
}

// Authenticate не различает "нет пользователя" и "неверный пароль".
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidAuth
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidAuth
	}

	return u, nil
}
