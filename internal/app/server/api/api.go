// GET  /api/v1/health                 # Проверка состояния (публичный)
// POST /api/auth/register             # Регистрация (публичный)
// POST /api/auth/login                # Логин (публичный)
// GET  /api/passwords                 # Список записей (auth)
// POST /api/passwords                 # Создать запись (auth)
// GET  /api/passwords/{id}            # Получить запись (auth)
// PUT  /api/passwords/{id}            # Обновить запись (auth)
// DELETE /api/passwords/{id}          # Удалить запись (auth)
// POST /api/passwords/{id}/decrypt    # Расшифровать секрет (auth)
// GET  /api/password/categories       # Категории (публичный)
// POST /api/password/generate         # Генератор пароля (публичный)
// POST /api/password/generate-pin     # Генератор PIN (публичный)
// GET  /metrics                       # Prometheus

package api

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	credentialAPI "passwordy/internal/app/server/api/http/credential"
	generatorAPI "passwordy/internal/app/server/api/http/generator"
	healthAPI "passwordy/internal/app/server/api/http/health"
	"passwordy/internal/app/server/api/http/middleware"
	"passwordy/internal/app/server/api/http/middleware/auth"
	"passwordy/internal/app/server/api/http/middleware/logger"
	"passwordy/internal/app/server/api/http/middleware/metrics"
	userAPI "passwordy/internal/app/server/api/http/user"
	"passwordy/internal/app/server/config"
	"passwordy/internal/app/server/crypto"
	"passwordy/internal/domain/credential"
	"passwordy/internal/domain/generator"
	"passwordy/internal/domain/session"
	"passwordy/internal/domain/user"
	"passwordy/internal/infrastructure/storage"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Credential *credentialAPI.Handler
	Generator  *generatorAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(store storage.Store, cfg *config.Config, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Passwordy API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, humaConfig)

	m := metrics.New()
	h, err := handlers(store, cfg, m, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Credential.SetupRoutes(API)
	h.Generator.SetupRoutes(API)

	mux.Handle("/metrics", m.Handler())

	return mux, nil
}

func handlers(store storage.Store, cfg *config.Config, m *metrics.Metrics, log *slog.Logger) (*Handlers, error) {
	key, err := crypto.ParseKey(cfg.Security.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key: %w", err)
	}
	cipher, err := crypto.NewSecretCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	sessionService := session.NewService([]byte(cfg.Security.JWTSecret), cfg.Security.TokenTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware(), m.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(store.Users(), user.NewPolicyValidator(cfg.Security.SpecialChars), log)
	middlewares.Add(loggerMW.Middleware(), m.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	credentialService := credential.NewService(store.Credentials(), cipher, log)
	public := middlewares.Add(loggerMW.Middleware(), m.Middleware()).GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), m.Middleware(), authMW.Middleware())
	credentialHandler := credentialAPI.NewHandler(credentialService, log, middlewares.GetAllAndClear(), public, cfg.Security.HideForeignRecords)

	middlewares.Add(loggerMW.Middleware(), m.Middleware())
	generatorHandler := generatorAPI.NewHandler(generator.New(), log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Credential: credentialHandler,
		Generator:  generatorHandler,
	}, nil
}
