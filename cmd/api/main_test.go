package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"search-frontend-api/pkg/config"
	"search-frontend-api/pkg/featureflags"
)

func TestCommand_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "info")

	var got *config.Config
	cmd := newCommand(func(ctx context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})

	err := cmd.Run(context.Background(), []string{
		"search-frontend",
		"--port", "7000",
		"--log-level", "debug",
		"--upstream-timeout", "3s",
		"--upstream-rate", "2.5",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "7000", got.Server.Port)
	assert.Equal(t, "debug", got.Logging.Level)
	assert.Equal(t, 3*time.Second, got.Upstream.Timeout)
	assert.Equal(t, 2.5, got.Upstream.RateLimit)
}

func TestCommand_UnsetFlagsKeepEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")

	var got *config.Config
	cmd := newCommand(func(ctx context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})

	require.NoError(t, cmd.Run(context.Background(), []string{"search-frontend"}))
	assert.Equal(t, "9000", got.Server.Port)
}

func TestCommand_InvalidConfigurationFails(t *testing.T) {
	called := false
	cmd := newCommand(func(ctx context.Context, cfg *config.Config) error {
		called = true
		return nil
	})

	err := cmd.Run(context.Background(), []string{"search-frontend", "--log-format", "xml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.False(t, called)
}

type discardLogger struct{}

func (discardLogger) Debug(string, map[string]interface{}) {}
func (discardLogger) Info(string, map[string]interface{})  {}
func (discardLogger) Warn(string, map[string]interface{})  {}
func (discardLogger) Error(string, map[string]interface{}) {}

func TestNewRouter_EndToEnd(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search.json":
			w.Write([]byte(`{"data": {"after": "t3_b", "children": [
				{"kind": "t3", "data": {"id": "a", "title": "Cats in boxes", "author": "alice", "subreddit": "cats",
				 "permalink": "/r/cats/comments/a/cats_in_boxes/", "url": "https://example.com/a", "score": 42,
				 "num_comments": 7, "created_utc": 1700000000}}
			]}}`))
		case "/subreddits/search.json":
			w.Write([]byte(`{"data": {"children": [
				{"kind": "t5", "data": {"display_name_prefixed": "r/cats", "url": "/r/cats/",
				 "public_description": "Cats!", "subscribers": 4250000.0}}
			]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Not Found", "error": 404}`))
		}
	}))
	defer upstreamSrv.Close()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{BaseURL: upstreamSrv.URL, Timeout: 5 * time.Second, Burst: 1},
	}
	router, err := newRouter(cfg, discardLogger{}, featureflags.NewStaticManager(nil))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=cats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cats in boxes")
	assert.Contains(t, body, "r/cats")
	assert.Contains(t, body, "4.2m members")
	assert.True(t, strings.Contains(body, "after=t3_b"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/r/missing/search?q=cats&restrict_sr=on", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}
