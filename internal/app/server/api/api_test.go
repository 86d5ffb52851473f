package api

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passwordy/internal/app/server/config"
	"passwordy/internal/app/server/crypto"
	"passwordy/internal/infrastructure/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return &config.Config{
		Env: config.EnvLocal,
		DB: config.DB{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "api.db"),
		},
		Security: config.Security{
			EncryptionKey:      hex.EncodeToString(key),
			JWTSecret:          "api-test-secret",
			TokenTTL:           time.Hour,
			HideForeignRecords: true,
		},
	}
}

func setupServer(t *testing.T) *chi.Mux {
	t.Helper()
	cfg := testConfig(t)

	store, err := storage.Open(context.Background(), cfg.DB, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mux, err := New(store, cfg, slog.Default())
	require.NoError(t, err)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, mux http.Handler, username string) string {
	t.Helper()
	rec := do(t, mux, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "Str0ng!Passw0rd",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "Str0ng!Passw0rd",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Bearer", resp.Type)
	return resp.Token
}

func TestAPI_CredentialLifecycle(t *testing.T) {
	mux := setupServer(t)
	alice := login(t, mux, "alice")
	bob := login(t, mux, "bob")

	rec := do(t, mux, http.MethodPost, "/api/passwords", alice, map[string]string{
		"label":    "GitHub",
		"password": "hunter2",
		"category": "Work",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hunter2")

	var created struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.Value)

	path := "/api/passwords/" + created.ID

	rec = do(t, mux, http.MethodPost, path+"/decrypt", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"password":"hunter2"`)

	// чужая запись неотличима от несуществующей
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, path, bob, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodPost, path+"/decrypt", bob, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodDelete, path, bob, nil).Code)

	rec = do(t, mux, http.MethodGet, "/api/passwords", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, mux, http.MethodPut, path, alice, map[string]string{"label": "GitHub", "password": "n3w-secret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, mux, http.MethodPost, path+"/decrypt", alice, nil)
	assert.Contains(t, rec.Body.String(), "n3w-secret")

	assert.Equal(t, http.StatusNoContent, do(t, mux, http.MethodDelete, path, alice, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, path, alice, nil).Code)
}

func TestAPI_Unauthorized(t *testing.T) {
	mux := setupServer(t)

	rec := do(t, mux, http.MethodGet, "/api/passwords", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/passwords", "forged.token.value", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_Registration(t *testing.T) {
	mux := setupServer(t)

	rec := do(t, mux, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "carol", "email": "carol@example.com", "password": "weak",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "too-short")

	login(t, mux, "carol")

	rec = do(t, mux, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "carol", "email": "other@example.com", "password": "Str0ng!Passw0rd",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "carol", "password": "Wr0ng!Passw0rd",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_PublicEndpoints(t *testing.T) {
	mux := setupServer(t)

	assert.Equal(t, http.StatusOK, do(t, mux, http.MethodGet, "/api/v1/health", "", nil).Code)

	rec := do(t, mux, http.MethodGet, "/api/password/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Banking")

	rec = do(t, mux, http.MethodPost, "/api/password/generate", "", map[string]any{"length": 20})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var generated struct {
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	assert.Len(t, generated.Password, 20)

	rec = do(t, mux, http.MethodPost, "/api/password/generate-pin", "", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"pin":`)

	rec = do(t, mux, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `operation="generate-password"`))
}

func TestNew_InvalidKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.Security.EncryptionKey = "abcd"

	store, err := storage.Open(context.Background(), cfg.DB, slog.Default())
	require.NoError(t, err)
	defer store.Close()

	_, err = New(store, cfg, slog.Default())
	assert.Error(t, err)
}
