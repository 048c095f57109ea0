// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/platform/ctxutil"
	"github.com/taibuivan/panelkit/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

An empty body leaves target untouched, since endpoint parameter bags such as
server_remove_all carry no fields. Numbers decode as [json.Number] so large
integer ids keep every digit.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if request.Body == nil {
		return nil
	}

	decoder := json.NewDecoder(request.Body)
	decoder.UseNumber()

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredSession returns the session subject owning the request's widget state.

Returns:
  - string: Session subject
  - error: apperr.Internal if the session middleware was not mounted
*/
func RequiredSession(request *http.Request) (string, error) {
	session := ctxutil.GetSession(request.Context())
	if session == "" {
		return "", apperr.Internal(errors.New("request: session middleware not mounted"))
	}
	return session, nil
}
