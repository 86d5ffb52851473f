package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"passwordy/internal/domain/credential"
)

type CredentialRepository struct {
	db  DBTX
	log *slog.Logger
}

func NewCredentialRepository(db DBTX, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:  db,
		log: log.With("component", "credential_repository"),
	}
}

func (r *CredentialRepository) Save(ctx context.Context, c *credential.Credential) error {
	const query = `
		INSERT INTO credentials (id, owner, label, secret, username, url, notes, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Owner, c.Label, c.Secret, c.Username, c.URL, c.Notes, c.Category, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		r.log.Error("failed to save credential", "id", c.ID, "error", err)
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

// Update заменяет изменяемые поля. owner и created_at не трогаются.
func (r *CredentialRepository) Update(ctx context.Context, c *credential.Credential) error {
	const query = `
		UPDATE credentials SET
			label = $2,
			secret = $3,
			username = $4,
			url = $5,
			notes = $6,
			category = $7,
			updated_at = $8
		WHERE id = $1`

	if _, err := uuid.Parse(c.ID); err != nil {
		return credential.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.Label, c.Secret, c.Username, c.URL, c.Notes, c.Category, c.UpdatedAt)
	if err != nil {
		r.log.Error("failed to update credential", "id", c.ID, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if n == 0 {
		return credential.ErrNotFound
	}

	return nil
}

func (r *CredentialRepository) FindByID(ctx context.Context, id string) (*credential.Credential, error) {
	const query = `
		SELECT id, owner, label, secret, username, url, notes, category, created_at, updated_at
		FROM credentials
		WHERE id = $1`

	// колонка id типа UUID: невалидная строка дала бы 22P02 вместо "не найдено"
	if _, err := uuid.Parse(id); err != nil {
		return nil, credential.ErrNotFound
	}

	c, err := scanCredential(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credential.ErrNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return c, nil
}

func (r *CredentialRepository) FindAllByOwner(ctx context.Context, owner string) ([]credential.Credential, error) {
	const query = `
		SELECT id, owner, label, secret, username, url, notes, category, created_at, updated_at
		FROM credentials
		WHERE owner = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		r.log.Error("failed to list credentials", "owner", owner, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	list := make([]credential.Credential, 0)
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}

	return list, nil
}

func (r *CredentialRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM credentials WHERE id = $1`

	if _, err := uuid.Parse(id); err != nil {
		return credential.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if n == 0 {
		return credential.ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (*credential.Credential, error) {
	var c credential.Credential
	err := row.Scan(&c.ID, &c.Owner, &c.Label, &c.Secret, &c.Username, &c.URL, &c.Notes, &c.Category,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
