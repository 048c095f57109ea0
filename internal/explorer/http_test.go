// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/panelkit/internal/explorer"
	"github.com/taibuivan/panelkit/internal/platform/ctxutil"
	"github.com/taibuivan/panelkit/internal/records"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	return routerFor(t, newFixture(t))
}

func routerFor(t *testing.T, f *fixture) http.Handler {
	t.Helper()

	require.NoError(t, f.service.Register(comicChapters()))

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(request.Context(), session)))
		})
	})
	router.Route("/explorers", explorer.NewHandler(f.service).RegisterRoutes)
	return router
}

/*
TestHandler_SelectThenList drives the select endpoint and the scoped collection read.
*/
func TestHandler_SelectThenList(t *testing.T) {
	router := newRouter(t)

	// 1. Numeric ids are accepted
	request := httptest.NewRequest(http.MethodPost, "/explorers/comic_chapters/select_container_record", strings.NewReader(`{"id":5}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	// 2. The collection is scoped to comic 5
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/explorers/comic_chapters/collection?limit=1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var page struct {
		Data []map[string]any `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "c1", page.Data[0]["id"])

	// 3. The tree reports the selection
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/explorers/comic_chapters", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"selectedContainerId":"5"`)
}

/*
TestHandler_SelectLargeNumericID keeps integer ids beyond float64 precision exact.
*/
func TestHandler_SelectLargeNumericID(t *testing.T) {
	f := newFixture(t)
	f.records.Seed("Chapter",
		records.Record{"id": "big2", "comicid": "9007199254740992"},
		records.Record{"id": "big3", "comicid": "9007199254740993"},
	)
	router := routerFor(t, f)

	request := httptest.NewRequest(http.MethodPost, "/explorers/comic_chapters/select_container_record", strings.NewReader(`{"id":9007199254740993}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/explorers/comic_chapters/collection", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var page struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "big3", page.Data[0]["id"])

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/explorers/comic_chapters", nil))
	assert.Contains(t, recorder.Body.String(), `"selectedContainerId":"9007199254740993"`)
}

/*
TestHandler_Errors maps domain errors onto the error envelope.
*/
func TestHandler_Errors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"unknown_explorer", http.MethodGet, "/explorers/missing", "", http.StatusNotFound, "NOT_FOUND"},
		{"missing_id", http.MethodPost, "/explorers/comic_chapters/select_container_record", `{}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"malformed_json", http.MethodPost, "/explorers/comic_chapters/select_container_record", `{"id":`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantErr)
		})
	}
}
