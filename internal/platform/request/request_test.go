// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/panelkit/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/panelkit/internal/platform/request"
	"github.com/taibuivan/panelkit/internal/platform/validate"
)

/*
TestDecodeJSON covers populated, numeric, empty and malformed bodies.
*/
func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"cmp1"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &body))
	assert.Equal(t, "cmp1", body.Name)

	var bag struct {
		ID any `json:"id"`
	}
	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":9007199254740993}`))
	require.NoError(t, requestutil.DecodeJSON(request, &bag))
	assert.Equal(t, json.Number("9007199254740993"), bag.ID)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, requestutil.DecodeJSON(request, &body))

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{nope"))
	assert.Equal(t, validate.ErrInvalidJSON, requestutil.DecodeJSON(request, &body))
}

/*
TestRequiredSession fails closed when no session is attached.
*/
func TestRequiredSession(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := requestutil.RequiredSession(request)
	assert.Error(t, err)

	request = request.WithContext(ctxutil.WithSession(request.Context(), "abc"))
	session, err := requestutil.RequiredSession(request)
	require.NoError(t, err)
	assert.Equal(t, "abc", session)
}
