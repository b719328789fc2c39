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
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/nestlang/pkg/errors"
	"github.com/NVIDIA/nestlang/pkg/serializer"
)

// ErrorResponse is the JSON body of every error returned by the server.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// RetryableFromCode reports whether a request failing with code may succeed
// when retried unchanged.
func RetryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTimeout, errors.ErrCodeRateLimitExceeded, errors.ErrCodeUnavailable, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a status and code and writes it. Context of a
// StructuredError is copied into the details.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := errors.CodeOf(err)

	merged := make(map[string]any, len(details)+1)
	for k, v := range details {
		merged[k] = v
	}
	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		for k, v := range se.Context {
			merged[k] = v
		}
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	WriteError(w, r, code.HTTPStatus(), code, message, RetryableFromCode(code), merged)
}

// RequireMethods rejects requests whose method is not listed with 405.
func RequireMethods(next http.HandlerFunc, methods ...string) http.HandlerFunc {
	allow := make(map[string]bool, len(methods))
	for _, m := range methods {
		allow[m] = true
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !allow[r.Method] {
			for _, m := range methods {
				w.Header().Add("Allow", m)
			}
			WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{
					"method":  r.Method,
					"allowed": methods,
				})
			return
		}
		next(w, r)
	}
}
