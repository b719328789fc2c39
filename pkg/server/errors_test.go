// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nestlang/pkg/errors"
)

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want bool
	}{
		{errors.ErrCodeInvalidRequest, false},
		{errors.ErrCodeNotFound, false},
		{errors.ErrCodeMethodNotAllowed, false},
		{errors.ErrCodeRequestTooLarge, false},
		{errors.ErrCodeRateLimitExceeded, true},
		{errors.ErrCodeUnavailable, true},
		{errors.ErrCodeTimeout, true},
		{errors.ErrCodeInternal, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, RetryableFromCode(tt.code))
		})
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad input", false,
		map[string]any{"field": "nestlang"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad input", resp.Message)
	assert.Equal(t, "nestlang", resp.Details["field"])
	assert.NotEmpty(t, resp.RequestID)
	assert.False(t, resp.Retryable)
}

func TestWriteErrorFromErr(t *testing.T) {
	cause := errors.WrapWithContext(errors.ErrCodeNotFound, "missing", fmt.Errorf("boom"),
		map[string]any{"source": "a.nest"})
	wrapped := fmt.Errorf("outer: %w", cause)

	rec := httptest.NewRecorder()
	WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), wrapped, "lookup failed", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "lookup failed", resp.Message)
	assert.Equal(t, "a.nest", resp.Details["source"])
	assert.Contains(t, resp.Details["error"], "boom")
}

func TestWriteErrorFromErrPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("plain"), "failed", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "INTERNAL", resp.Code)
	assert.True(t, resp.Retryable)
}

func TestRequireMethods(t *testing.T) {
	called := false
	h := RequireMethods(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}, http.MethodPost)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/validate", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/validate", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
