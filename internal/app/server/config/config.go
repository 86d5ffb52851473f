package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultSpecialChars - набор спецсимволов для политики мастер-пароля
	DefaultSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

	localJWTSecret = "local-dev-jwt-secret"
)

var (
	ErrMissingEncryptionKey = errors.New("ENCRYPTION_KEY is required")
	ErrMissingJWTSecret     = errors.New("JWT_SECRET is required outside local env")
	ErrUnknownDriver        = errors.New("unknown storage driver")
	ErrInvalidLogLevel      = errors.New("invalid LOG_LEVEL")
)

type Config struct {
	Env      string
	DB       DB
	Server   Server
	Logger   Logger
	Security Security
}

type DB struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURI string `env:"DATABASE_URI"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"passwordy.db"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Logger struct {
	// пусто - уровень по умолчанию для окружения
	LogLevel string `env:"LOG_LEVEL"`
}

type Security struct {
	EncryptionKey      string        `env:"ENCRYPTION_KEY"`
	JWTSecret          string        `env:"JWT_SECRET"`
	TokenTTL           time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	SpecialChars       string        `env:"POLICY_SPECIAL_CHARS"`
	HideForeignRecords bool          `env:"HIDE_FOREIGN_RECORDS" envDefault:"true"`
}

// Load читает .env (если есть) и переменные окружения через viper.
func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return FromViper(viper.GetViper())
}

// FromViper собирает конфиг из уже настроенного экземпляра viper.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvProd)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("storage_driver", DriverPostgres)
	v.SetDefault("sqlite_path", "passwordy.db")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("policy_special_chars", DefaultSpecialChars)
	v.SetDefault("hide_foreign_records", true)

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      v.GetString("storage_driver"),
			DatabaseURI: v.GetString("database_uri"),
			SQLitePath:  v.GetString("sqlite_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Security: Security{
			EncryptionKey:      v.GetString("encryption_key"),
			JWTSecret:          v.GetString("jwt_secret"),
			TokenTTL:           v.GetDuration("token_ttl"),
			SpecialChars:       v.GetString("policy_special_chars"),
			HideForeignRecords: v.GetBool("hide_foreign_records"),
		},
	}

	if cfg.Security.JWTSecret == "" && cfg.Env == EnvLocal {
		cfg.Security.JWTSecret = localJWTSecret
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры. Ключ шифрования не имеет значения по умолчанию.
func (c *Config) Validate() error {
	if c.Security.EncryptionKey == "" {
		return ErrMissingEncryptionKey
	}
	if c.Security.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	if c.Logger.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Logger.LogLevel)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logger.LogLevel)
		}
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DB.Driver)
	}

	return nil
}
