package entrypoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		HTTP:      config.HTTP{Host: "127.0.0.1", Port: 0, RequestTimeout: 5 * time.Second, CORSAllowedOrigins: []string{"*"}},
		Database:  config.Database{Driver: "sqlite", URL: filepath.Join(dir, "buzzwords.db")},
		Auth:      config.Auth{BcryptCost: 4},
		Bookmarks: config.Bookmarks{DefaultLimit: 10, MaxLimit: 100},
		Logging:   config.Logging{Level: "info", Format: "json"},
		Tasks: config.Tasks{
			Enabled:         true,
			DatabasePath:    filepath.Join(dir, "buzzwords-tasks.db"),
			Workers:         1,
			ReleaseAfter:    time.Minute,
			CleanupInterval: time.Hour,
		},
		Maintenance: config.Maintenance{Enabled: true, Schedule: "0 3 * * *"},
		Audit:       config.Audit{Enabled: true, RetentionDays: 30},
		Global:      config.Global{ShutdownTimeoutInSeconds: 1},
	}
}

func TestBuild_WiresEverything(t *testing.T) {
	cfg := testConfig(t)

	app, err := Build(cfg, "test", zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app.Tasks)
	require.NotNil(t, app.Scheduler)
	require.NotNil(t, app.Audit)

	require.NoError(t, app.Start(context.Background()))
	assert.True(t, app.Scheduler.IsRunning())

	w := httptest.NewRecorder()
	app.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks/types", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	app.Shutdown(ctx)
	assert.False(t, app.Scheduler.IsRunning())
}

func TestBuild_WithoutTasks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tasks.Enabled = false
	cfg.Audit.Enabled = false

	app, err := Build(cfg, "test", zap.NewNop())
	require.NoError(t, err)
	defer app.Shutdown(context.Background())

	assert.Nil(t, app.Tasks)
	assert.Nil(t, app.Scheduler)
	assert.Nil(t, app.Audit)

	w := httptest.NewRecorder()
	app.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks/types", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuild_TasksWithoutAudit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audit.Enabled = false

	app, err := Build(cfg, "test", zap.NewNop())
	require.NoError(t, err)
	defer app.Shutdown(context.Background())
	require.NotNil(t, app.Tasks)

	w := httptest.NewRecorder()
	app.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks/cleanup_audit_events/run", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	app.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tasks/sweep_orphan_bookmarks/run", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestBuild_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "mongodb"

	_, err := Build(cfg, "test", zap.NewNop())
	assert.Error(t, err)
}

func TestNewHandler_CORS(t *testing.T) {
	app, err := Build(testConfig(t), "test", zap.NewNop())
	require.NoError(t, err)
	defer app.Shutdown(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	app.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/bookmarks/remove/abc", nil)
	preflight.Header.Set("Origin", "https://example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w = httptest.NewRecorder()
	app.Handler.ServeHTTP(w, preflight)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}
