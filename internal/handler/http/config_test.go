package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
)

func TestGetConfig(t *testing.T) {
	parseErr := &resolver.ParseError{Path: "/etc/jupyter/x.json", Err: errors.New("invalid character")}

	tests := []struct {
		name       string
		config     map[string]any
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "resolved configuration",
			config:     map[string]any{"enable": true, "nested": map[string]any{"list": []any{1.0, "two"}}},
			wantStatus: http.StatusOK,
			wantBody:   `{"enable":true,"nested":{"list":[1,"two"]}}`,
		},
		{
			name:       "no configuration file",
			err:        resolver.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "",
		},
		{
			name:       "empty configuration object",
			config:     map[string]any{},
			wantStatus: http.StatusNotFound,
			wantBody:   "",
		},
		{
			name:       "malformed configuration file",
			err:        parseErr,
			wantStatus: http.StatusInternalServerError,
			wantBody:   mustJSON(t, parseErr.Error()),
		},
		{
			name:       "unreadable configuration file",
			err:        errors.New("open /etc/jupyter/x.json: permission denied"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"open /etc/jupyter/x.json: permission denied"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, mocks := newTestServices(t)
			mocks.config.EXPECT().GetConfig(gomock.Any()).Return(tt.config, tt.err)
			h := NewHandler(services, config.Server{}, testNamespace, logger.Nop())

			rr := httptest.NewRecorder()
			h.getConfig(rr, httptest.NewRequest(http.MethodGet, "/"+testNamespace+"/config", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// TestGetConfig_ResolvedFromDisk runs the two-directory scenario end to end:
// the last listed directory wins.
func TestGetConfig_ResolvedFromDisk(t *testing.T) {
	userDir, systemDir := t.TempDir(), t.TempDir()
	const ext = "etc_jupyterlab_telemetry_library"

	require.NoError(t, os.WriteFile(filepath.Join(userDir, ext+".json"), []byte(`{"source": "user"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(systemDir, ext+".json"), []byte(`{"source": "system"}`), 0o644))

	configService, err := service.NewConfigService(
		resolver.New(resolver.LastListedFirst, logger.Nop()),
		[]string{userDir, systemDir},
		ext,
		config.LoadPerRequest,
		logger.Nop(),
	)
	require.NoError(t, err)

	h := NewHandler(&service.Services{ConfigService: configService}, config.Server{}, testNamespace, logger.Nop())

	rr := httptest.NewRecorder()
	h.getConfig(rr, httptest.NewRequest(http.MethodGet, "/"+testNamespace+"/config", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"source": "system"}`, rr.Body.String())
}

func TestGetConfig_FileValuesFromDisk(t *testing.T) {
	const ext = "etc_jupyterlab_telemetry_library"

	tests := []struct {
		name       string
		content    string
		wantStatus int
		wantBody   string
	}{
		{name: "null", content: `null`, wantStatus: http.StatusNotFound},
		{name: "empty array", content: `[]`, wantStatus: http.StatusNotFound},
		{name: "empty object", content: `{}`, wantStatus: http.StatusNotFound},
		{name: "non-empty array", content: `[1]`, wantStatus: http.StatusInternalServerError, wantBody: "is not a JSON object"},
		{name: "malformed", content: `{"a":`, wantStatus: http.StatusInternalServerError, wantBody: "error parsing configuration file"},
		{name: "object", content: `{"a": 1}`, wantStatus: http.StatusOK, wantBody: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ext+".json"), []byte(tt.content), 0o644))

			configService, err := service.NewConfigService(
				resolver.New(resolver.LastListedFirst, logger.Nop()),
				[]string{dir},
				ext,
				config.LoadPerRequest,
				logger.Nop(),
			)
			require.NoError(t, err)
			h := NewHandler(&service.Services{ConfigService: configService}, config.Server{}, testNamespace, logger.Nop())

			rr := httptest.NewRecorder()
			h.getConfig(rr, httptest.NewRequest(http.MethodGet, "/"+testNamespace+"/config", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
