package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"passwordy/internal/domain/credential"
)

type CredentialRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewCredentialRepository(s *Storage, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:  s.db,
		log: log.With("component", "credential_repository", "driver", "sqlite"),
	}
}

func (r *CredentialRepository) Save(ctx context.Context, c *credential.Credential) error {
	const query = `
		INSERT INTO credentials (id, owner, label, secret, username, url, notes, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Owner, c.Label, c.Secret, c.Username, c.URL, c.Notes, c.Category, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		r.log.Error("failed to save credential", "id", c.ID, "error", err)
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) Update(ctx context.Context, c *credential.Credential) error {
	const query = `
		UPDATE credentials
		SET label = ?, secret = ?, username = ?, url = ?, notes = ?, category = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		c.Label, c.Secret, c.Username, c.URL, c.Notes, c.Category, c.UpdatedAt.UTC(), c.ID)
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
		WHERE id = ?`

	var c credential.Credential
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Owner, &c.Label, &c.Secret, &c.Username, &c.URL, &c.Notes, &c.Category, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credential.ErrNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &c, nil
}

func (r *CredentialRepository) FindAllByOwner(ctx context.Context, owner string) ([]credential.Credential, error) {
	const query = `
		SELECT id, owner, label, secret, username, url, notes, category, created_at, updated_at
		FROM credentials
		WHERE owner = ?
		ORDER BY updated_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	list := make([]credential.Credential, 0)
	for rows.Next() {
		var c credential.Credential
		if err := rows.Scan(&c.ID, &c.Owner, &c.Label, &c.Secret, &c.Username, &c.URL, &c.Notes, &c.Category,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		list = append(list, c)
	}

	return list, rows.Err()
}

func (r *CredentialRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, id)
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
