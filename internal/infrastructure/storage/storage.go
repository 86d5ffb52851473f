// Package storage выбирает реализацию хранилища по конфигурации.
package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"passwordy/internal/app/server/config"
	"passwordy/internal/domain/credential"
	"passwordy/internal/domain/user"
	"passwordy/internal/infrastructure/migration"
	"passwordy/internal/infrastructure/storage/postgres"
	"passwordy/internal/infrastructure/storage/sqlite"
)

// Store - набор репозиториев поверх одного подключения.
type Store interface {
	Users() user.Repository
	Credentials() credential.Repository
	Close() error
}

type store struct {
	users       user.Repository
	credentials credential.Repository
	close       func() error
}

func (s *store) Users() user.Repository             { return s.users }
func (s *store) Credentials() credential.Repository { return s.credentials }
func (s *store) Close() error                       { return s.close() }

// Open подключается к хранилищу. SQLite мигрирует схему при открытии,
// для Postgres схему накатывает Migrate.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := postgres.New(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}
		return &store{
			users:       postgres.NewUserRepository(pg.DB(), log),
			credentials: postgres.NewCredentialRepository(pg.DB(), log),
			close:       pg.Close,
		}, nil

	case config.DriverSQLite:
		lite, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			users:       sqlite.NewUserRepository(lite, log),
			credentials: sqlite.NewCredentialRepository(lite, log),
			close:       lite.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
}

// Migrate применяет встроенные миграции для выбранного драйвера.
func Migrate(cfg config.DB) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		return migration.NewMigration(cfg.DatabaseURI, migration.DefaultEngine).Up()
	case config.DriverSQLite:
		lite, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return err
		}
		return lite.Close()
	}

	return fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
}
