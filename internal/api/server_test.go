// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/panelkit/internal/api"
	"github.com/taibuivan/panelkit/internal/definition"
	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/explorer"
	"github.com/taibuivan/panelkit/internal/platform/config"
	"github.com/taibuivan/panelkit/internal/platform/sec"
	"github.com/taibuivan/panelkit/internal/records"
	"github.com/taibuivan/panelkit/internal/selection"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/internal/workspace"
)

func newServer(t *testing.T, checks ...api.Check) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	entities, err := entity.NewRegistry(entity.Catalog()...)
	require.NoError(t, err)

	widgets := widget.NewRegistry()
	require.NoError(t, widget.RegisterBuiltins(widgets))

	reader := records.NewMemoryRepository()

	explorers := explorer.NewService(entities, widgets, selection.NewMemoryRepository(), reader, logger)
	workspaces := workspace.NewService(widgets, workspace.NewMemoryRepository(), logger)

	definitions, err := definition.Load("../../data/definitions.hcl")
	require.NoError(t, err)
	require.NoError(t, definitions.Apply(widgets, explorers, workspaces))
	require.NoError(t, definitions.Seed(entities, reader))

	tokens, err := sec.NewSessionTokens("test-secret", "panelkit.test", time.Hour)
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(checks, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "development", AllowedOriginSuffix: "panelkit.app"}
	server := api.NewServer(ctx, cfg, logger, tokens, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Components: api.NewComponentsHandler(widgets, explorers, workspaces),
		Explorer:   explorer.NewHandler(explorers),
		Workspace:  workspace.NewHandler(workspaces),
	})
	return server.Handler()
}

func call(handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		request.Header.Set("X-Session-Token", token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_SessionScopedState keeps widget state per session token.

Steps:
 1. First call mints a session token
 2. Calls with that token see their own tabs and selection
 3. A fresh session sees neither
*/
func TestServer_SessionScopedState(t *testing.T) {
	handler := newServer(t)

	// 1. Mint
	recorder := call(handler, http.MethodGet, "/api/v1/components", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	token := recorder.Header().Get("X-Session-Token")
	require.NotEmpty(t, token)
	assert.Contains(t, recorder.Body.String(), `"ChapterGrid"`)
	assert.Contains(t, recorder.Body.String(), `"comic_chapters"`)

	// 2. Same session
	recorder = call(handler, http.MethodPost, "/api/v1/workspaces/desk/deliver_component", token, `{"name":"cmp0","component":"comic_chapters"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("X-Session-Token"))

	recorder = call(handler, http.MethodPost, "/api/v1/explorers/comic_chapters/select_container_record", token, `{"id":1}`)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = call(handler, http.MethodGet, "/api/v1/explorers/comic_chapters/collection", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Double Dungeon"`)
	assert.NotContains(t, recorder.Body.String(), `"Ball"`)

	recorder = call(handler, http.MethodGet, "/api/v1/workspaces/desk", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"itemId":"cmp0"`)
	assert.Contains(t, recorder.Body.String(), `"alwaysReloadFirstTab":true`)

	// 3. Another session
	recorder = call(handler, http.MethodGet, "/api/v1/workspaces/desk", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `"itemId":"cmp0"`)

	recorder = call(handler, http.MethodGet, "/api/v1/explorers/comic_chapters/collection", "forged", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `"Double Dungeon"`)
}

/*
TestServer_Health reports liveness and dependency readiness.
*/
func TestServer_Health(t *testing.T) {
	healthy := newServer(t, api.Check{Name: "sqlite", Ping: func(context.Context) error { return nil }})
	assert.Equal(t, http.StatusOK, call(healthy, http.MethodGet, "/health", "", "").Code)

	recorder := call(healthy, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ready"`)

	degraded := newServer(t, api.Check{Name: "redis", Ping: func(context.Context) error { return errors.New("down") }})
	recorder = call(degraded, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
}
