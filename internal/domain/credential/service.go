package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, requester string, in Input) (*Credential, error)
	List(ctx context.Context, requester string) ([]Credential, error)
	Get(ctx context.Context, requester, id string) (*Credential, error)
	Reveal(ctx context.Context, requester, id string) (*Revealed, error)
	Update(ctx context.Context, requester, id string, in Input) (*Credential, error)
	Delete(ctx context.Context, requester, id string) error
	Categories() []string
}

type Service struct {
	repo   Repository
	cipher Cipher
	guard  *Guard
	log    *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, cipher Cipher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		guard:  NewGuard(),
		log:    log.With("component", "credential_service"),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, requester string, in Input) (*Credential, error) {
	if requester == "" {
		return nil, fmt.Errorf("%w: requester identity is required", ErrValidation)
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	envelope, err := s.cipher.Encrypt(in.Secret)
	if err != nil {
		return nil, fmt.Errorf("encrypt secret: %w", err)
	}

	now := s.now()
	c := &Credential{
		ID:        s.newID(),
		Owner:     requester,
		CreatedAt: now,
	}
	apply(c, in, envelope, now)

	if err := s.repo.Save(ctx, c); err != nil {
		s.log.Error("failed to save credential", "owner", requester, "error", err)
		return nil, storeErr(err)
	}

	s.log.Debug("credential created", "id", c.ID, "owner", requester)
	return c, nil
}

// List возвращает записи владельца без расшифровки.
func (s *Service) List(ctx context.Context, requester string) ([]Credential, error) {
	if requester == "" {
		return nil, fmt.Errorf("%w: requester identity is required", ErrValidation)
	}

	list, err := s.repo.FindAllByOwner(ctx, requester)
	if err != nil {
		return nil, storeErr(err)
	}
	if list == nil {
		list = []Credential{}
	}

	return list, nil
}

func (s *Service) Get(ctx context.Context, requester, id string) (*Credential, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}

	if err := s.guard.Authorize(requester, c); err != nil {
		s.log.Warn("access denied", "id", id, "requester", requester)
		return nil, err
	}

	return c, nil
}

func (s *Service) Reveal(ctx context.Context, requester, id string) (*Revealed, error) {
	c, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	plain, err := s.cipher.Decrypt(c.Secret)
	if err != nil {
		s.log.Error("failed to decrypt credential", "id", id, "error", err)
		return nil, fmt.Errorf("reveal %s: %w", id, err)
	}

	return &Revealed{ID: c.ID, Label: c.Label, Secret: plain}, nil
}

// Update полностью заменяет label, секрет и метаданные. Владелец и created_at не меняются.
func (s *Service) Update(ctx context.Context, requester, id string, in Input) (*Credential, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	envelope, err := s.cipher.Encrypt(in.Secret)
	if err != nil {
		return nil, fmt.Errorf("encrypt secret: %w", err)
	}

	updated := *c
	apply(&updated, in, envelope, s.now())

	if err := s.repo.Update(ctx, &updated); err != nil {
		// удалена между чтением и записью
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update credential", "id", id, "error", err)
		return nil, storeErr(err)
	}

	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, requester, id string) error {
	if _, err := s.Get(ctx, requester, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return storeErr(err)
	}

	s.log.Debug("credential deleted", "id", id, "owner", requester)
	return nil
}

func (s *Service) Categories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}

func validate(in Input) error {
	var missing []string
	if strings.TrimSpace(in.Label) == "" {
		missing = append(missing, "label")
	}
	if in.Secret == "" {
		missing = append(missing, "secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func apply(c *Credential, in Input, envelope string, now time.Time) {
	c.Label = in.Label
	c.Secret = envelope
	c.Username = in.Username
	c.URL = in.URL
	c.Notes = in.Notes
	c.Category = in.Category
	c.UpdatedAt = now
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
