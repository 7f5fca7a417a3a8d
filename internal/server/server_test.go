package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/config"
)

const budget = `inputs:
  - name: length
    value: 2.0
    uncertainty: 0.01
  - name: width
    value: 3.0
    uncertainty: 0.02
`

func testConfig() *config.Config {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Logging.Development = true
	cfg.RateLimit.Enabled = false
	return cfg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	h.ServeHTTP(w, req)
	return w
}

func TestNewServerRoutes(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)

	for _, path := range []string{"/", "/health", "/services"} {
		w := get(t, srv.Handler(), path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/services/execute",
		bytes.NewBufferString(`{"tool_id":"math.pi"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, srv.Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), "measurements_http_requests_total")
	assert.Contains(t, string(body), "measurements_workspace_size")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewServerPreloadsBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.yaml")
	require.NoError(t, os.WriteFile(path, []byte(budget), 0o600))

	cfg := testConfig()
	cfg.BudgetFile = path
	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, srv.Workspace().Len())
	m, ok := srv.Workspace().Get("width")
	require.True(t, ok)
	assert.Equal(t, 3.0, m.Value())
	assert.Equal(t, 0.02, m.Uncertainty())
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Diff.Formula = "sideways"
	_, err := NewServer(cfg, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.BudgetFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err = NewServer(cfg, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.Scope = "per-planet"
	_, err = NewServer(cfg, nil)
	assert.Error(t, err)
}

func TestRateLimitScope(t *testing.T) {
	tests := []struct {
		scope  string
		second int
	}{
		{"client", http.StatusOK},
		{"global", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateLimit.Enabled = true
			cfg.RateLimit.Scope = tt.scope
			cfg.RateLimit.RequestsPerSecond = 1
			cfg.RateLimit.Burst = 1
			srv, err := NewServer(cfg, nil)
			require.NoError(t, err)
			defer srv.Shutdown(context.Background())

			codes := make([]int, 0, 2)
			for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
				w := httptest.NewRecorder()
				req, err := http.NewRequest(http.MethodGet, "/health", nil)
				require.NoError(t, err)
				req.RemoteAddr = addr
				srv.Handler().ServeHTTP(w, req)
				codes = append(codes, w.Code)
			}
			assert.Equal(t, []int{http.StatusOK, tt.second}, codes)
		})
	}
}

func TestShutdownIdleServer(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
