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

package api

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/document"
	"github.com/NVIDIA/nestlang/pkg/errors"
	"github.com/NVIDIA/nestlang/pkg/example"
	"github.com/NVIDIA/nestlang/pkg/serializer"
	"github.com/NVIDIA/nestlang/pkg/server"
	"github.com/NVIDIA/nestlang/pkg/validator"
)

const defaultSource = "request"

// ValidateRequest is the structured body of POST /v1/validate.
type ValidateRequest struct {
	Source   string  `json:"source" yaml:"source"`
	NestLang *string `json:"nestlang" yaml:"nestlang"`
}

// Handler serves the NestLang API routes.
type Handler struct {
	validator *validator.Validator
}

// NewHandler creates a Handler validating with v.
func NewHandler(v *validator.Validator) *Handler {
	if v == nil {
		v = validator.New()
	}
	return &Handler{validator: v}
}

// Routes returns the API routes keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/validate":        server.RequireMethods(h.HandleValidate, http.MethodPost),
		"/v1/examples/render": server.RequireMethods(h.HandleRender, http.MethodPost),
	}
}

// HandleValidate validates the NestLang document in the request body.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidationHandlerTimeout)
	defer cancel()

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	source := r.URL.Query().Get("source")
	text, err := document.Decode(body)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid request encoding", false, map[string]any{"error": err.Error()})
		return
	}

	if format, structured := bodyFormat(r); structured {
		var req ValidateRequest
		if err := decode(format, []byte(text), &req); err != nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Invalid validation request", false, map[string]any{"error": err.Error()})
			return
		}
		if req.NestLang == nil {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Field 'nestlang' is required", false, nil)
			return
		}
		text = *req.NestLang
		if req.Source != "" {
			source = req.Source
		}
	}

	if source == "" {
		source = defaultSource
	}

	result, err := h.validator.ValidateText(ctx, source, text)
	if err != nil {
		server.WriteErrorFromErr(w, r, timeoutOr(ctx, err), "Failed to validate document", nil)
		return
	}

	dr := result.Results[0]
	slog.Debug("validated document",
		"requestID", server.RequestIDFromContext(r.Context()),
		"source", dr.Source,
		"valid", dr.Valid,
		"errors", len(dr.Errors))

	serializer.RespondJSON(w, http.StatusOK, dr.Result)
}

// HandleRender renders the list of examples in the request body.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	format, structured := bodyFormat(r)
	if !structured {
		format = serializer.FormatJSON
	}

	var catalog example.Catalog
	if err := decode(format, body, &catalog); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid example list", false, map[string]any{"error": err.Error()})
		return
	}

	rendered, err := catalog.Builder().BuildAll()
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Failed to render examples", false, map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rendered)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		return nil, true
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, errors.ErrCodeRequestTooLarge,
				"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return nil, false
		}
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Failed to read request body", false, map[string]any{"error": err.Error()})
		return nil, false
	}
	return body, true
}

// bodyFormat reports the structured format named by Content-Type, if any.
func bodyFormat(r *http.Request) (serializer.Format, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return "", false
	}
	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return serializer.FormatJSON, true
	case mediaType == "application/yaml" || mediaType == "application/x-yaml" || mediaType == "text/yaml":
		return serializer.FormatYAML, true
	default:
		return "", false
	}
}

func decode(format serializer.Format, body []byte, v any) error {
	reader, err := serializer.NewReader(format, bytes.NewReader(body))
	if err != nil {
		return err
	}
	return reader.Deserialize(v)
}

func timeoutOr(ctx context.Context, err error) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, "validation timed out", err)
	}
	return err
}
