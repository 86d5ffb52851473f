package generator

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"passwordy/internal/domain/generator"
)

func setup(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(generator.New(), slog.Default(), nil).SetupRoutes(api)
	return api
}

func TestHandler_Password(t *testing.T) {
	api := setup(t)

	tests := []struct {
		name        string
		body        map[string]any
		wantStatus  int
		wantLength  int
		wantSymbols bool
	}{
		{name: "defaults", body: map[string]any{}, wantStatus: http.StatusOK, wantLength: 16, wantSymbols: true},
		{name: "no symbols", body: map[string]any{"length": 24, "includeSymbols": false}, wantStatus: http.StatusOK, wantLength: 24},
		{name: "minimum", body: map[string]any{"length": 8}, wantStatus: http.StatusOK, wantLength: 8, wantSymbols: true},
		{name: "explicit zero", body: map[string]any{"length": 0}, wantStatus: http.StatusUnprocessableEntity},
		{name: "too short", body: map[string]any{"length": 5}, wantStatus: http.StatusUnprocessableEntity},
		{name: "too long", body: map[string]any{"length": 129}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Post("/api/password/generate", tt.body)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body PasswordResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Len(t, body.Password, tt.wantLength)
			assert.Equal(t, tt.wantSymbols, strings.ContainsAny(body.Password, generator.Symbols))
		})
	}
}

func TestHandler_PIN(t *testing.T) {
	api := setup(t)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantLength int
	}{
		{name: "default", body: map[string]any{}, wantStatus: http.StatusOK, wantLength: generator.DefaultPINLength},
		{name: "max", body: map[string]any{"length": 12}, wantStatus: http.StatusOK, wantLength: 12},
		{name: "explicit zero", body: map[string]any{"length": 0}, wantStatus: http.StatusUnprocessableEntity},
		{name: "too short", body: map[string]any{"length": 3}, wantStatus: http.StatusUnprocessableEntity},
		{name: "too long", body: map[string]any{"length": 13}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Post("/api/password/generate-pin", tt.body)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body PINResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Len(t, body.PIN, tt.wantLength)
			assert.Empty(t, strings.Trim(body.PIN, generator.Digits))
		})
	}
}
