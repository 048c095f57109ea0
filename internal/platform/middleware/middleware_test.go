// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/panelkit/internal/platform/ctxutil"
	"github.com/taibuivan/panelkit/internal/platform/middleware"
)

// stubTokens accepts "good" and issues "fresh" for session "new".
type stubTokens struct {
	issueErr error
}

func (s stubTokens) Issue() (string, string, error) {
	if s.issueErr != nil {
		return "", "", s.issueErr
	}
	return "new", "fresh", nil
}

func (s stubTokens) Verify(token string) (string, error) {
	if token == "good" {
		return "existing", nil
	}
	return "", errors.New("bad token")
}

// echoSession writes the session found in context.
var echoSession = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	_, _ = writer.Write([]byte(ctxutil.GetSession(request.Context())))
})

/*
TestSession resolves, rejects and mints session tokens.
*/
func TestSession(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantSession string
		wantHeader  string
	}{
		{"valid_token", "good", "existing", ""},
		{"missing_token", "", "new", "fresh"},
		{"forged_token", "forged", "new", "fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				request.Header.Set("X-Session-Token", tt.token)
			}
			recorder := httptest.NewRecorder()

			middleware.Session(stubTokens{})(echoSession).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.wantSession, recorder.Body.String())
			assert.Equal(t, tt.wantHeader, recorder.Header().Get("X-Session-Token"))
		})
	}
}

/*
TestSession_IssueFailure answers 500 without calling the handler.
*/
func TestSession_IssueFailure(t *testing.T) {
	recorder := httptest.NewRecorder()

	middleware.Session(stubTokens{issueErr: errors.New("no entropy")})(echoSession).
		ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

/*
TestRequestID reuses client IDs and mints missing ones.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "abc", seen)
}

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool  { return c.development }
func (c corsConfig) OriginSuffix() string { return "panelkit.app" }

/*
TestCORS allows configured origins and answers pre-flight requests.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		origin      string
		wantAllowed bool
	}{
		{"production_allowed", false, "https://desk.panelkit.app", true},
		{"production_denied", false, "https://evil.example", false},
		{"development_any", true, "http://localhost:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodOptions, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(corsConfig{development: tt.development})(echoSession).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, recorder.Header().Get("Access-Control-Expose-Headers"), "X-Session-Token")
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestRateLimit rejects requests beyond the burst.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	handler := middleware.RateLimit(ctx, 0.001, 2)(echoSession)

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "203.0.113.7:4000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	require.Len(t, codes, 3)
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

/*
TestPanicRecovery converts panics into a 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	recorder := httptest.NewRecorder()

	middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_SERVER_ERROR")
}
