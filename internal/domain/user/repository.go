package user

import (
	"context"
)

// Repository хранит учетные записи. Create возвращает ErrAlreadyExists при
// совпадении username или email, FindByUsername - ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
