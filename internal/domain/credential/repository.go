package credential

import (
	"context"
)

// Repository - хранилище записей. FindByID, Update и DeleteByID возвращают ErrNotFound,
// если записи нет. Save только вставляет, Update только заменяет существующую.
type Repository interface {
	Save(ctx context.Context, c *Credential) error
	Update(ctx context.Context, c *Credential) error
	FindByID(ctx context.Context, id string) (*Credential, error)
	FindAllByOwner(ctx context.Context, owner string) ([]Credential, error)
	DeleteByID(ctx context.Context, id string) error
}

// Cipher шифрует значение секрета перед сохранением.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(envelope string) (string, error)
}
