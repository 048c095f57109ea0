// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/ctxutil"
	"github.com/taibuivan/panelkit/internal/platform/respond"
)

// SessionTokens issues and verifies the tokens carrying a session subject.
//
// Defined here so handlers can be tested with a stub instead of real keys.
type SessionTokens interface {
	Issue() (session, token string, err error)
	Verify(token string) (string, error)
}

// Session resolves the session that owns the request's widget state.
//
// # Flow
//  1. Verify the X-Session-Token header when present.
//  2. When it is missing, expired or forged, start a new session and return
//     its token in the same response header.
//  3. Inject the session subject into the request context.
func Session(tokens SessionTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var session string
			if token := request.Header.Get(constants.HeaderXSessionToken); token != "" {
				verified, err := tokens.Verify(token)
				if err != nil {
					ctxutil.GetLogger(request.Context()).Info("session_token_rejected", slog.String("reason", err.Error()))
				}
				session = verified
			}

			if session == "" {
				issued, token, err := tokens.Issue()
				if err != nil {
					respond.Error(writer, request, apperr.Internal(err))
					return
				}
				session = issued
				writer.Header().Set(constants.HeaderXSessionToken, token)
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(request.Context(), session)))
		})
	}
}
