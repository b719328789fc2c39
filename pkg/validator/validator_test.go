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

package validator

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/document"
	"github.com/NVIDIA/nestlang/pkg/header"
	"github.com/NVIDIA/nestlang/pkg/nestlang"
)

const (
	validDoc   = "user: (object)\n  -name: Full name (string)\n"
	invalidDoc = "user: (object)\n  -age: Age in years (int)\nnot valid\n"
)

func TestNew(t *testing.T) {
	v := New()
	assert.Equal(t, defaults.ValidationConcurrency, v.Concurrency)

	v = New(WithVersion("v1.0.0"), WithConcurrency(2))
	assert.Equal(t, "v1.0.0", v.Version)
	assert.Equal(t, 2, v.Concurrency)

	v = New(WithConcurrency(0))
	assert.Equal(t, defaults.ValidationConcurrency, v.Concurrency)
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name       string
		docs       []document.Document
		wantStatus ValidationStatus
		wantPassed int
		wantFailed int
		wantErrors int
	}{
		{
			name:       "all documents pass",
			docs:       []document.Document{{Source: "a", Content: validDoc}, {Source: "b", Content: ""}},
			wantStatus: ValidationStatusPass,
			wantPassed: 2,
		},
		{
			name:       "one document fails",
			docs:       []document.Document{{Source: "a", Content: validDoc}, {Source: "b", Content: invalidDoc}},
			wantStatus: ValidationStatusFail,
			wantPassed: 1,
			wantFailed: 1,
			wantErrors: 2,
		},
		{
			name:       "all documents fail",
			docs:       []document.Document{{Source: "a", Content: "???"}, {Source: "b", Content: invalidDoc}},
			wantStatus: ValidationStatusFail,
			wantFailed: 2,
			wantErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(WithVersion("test"))
			result, err := v.Validate(context.Background(), tt.docs)
			require.NoError(t, err)

			assert.Equal(t, header.KindValidationResult, result.Kind)
			assert.Equal(t, APIVersion, result.APIVersion)
			assert.Equal(t, "test", result.Metadata["version"])
			assert.NotEmpty(t, result.Metadata["timestamp"])

			assert.Equal(t, tt.wantStatus, result.Summary.Status)
			assert.Equal(t, tt.wantPassed, result.Summary.Passed)
			assert.Equal(t, tt.wantFailed, result.Summary.Failed)
			assert.Equal(t, tt.wantErrors, result.Summary.Errors)
			assert.Equal(t, len(tt.docs), result.Summary.Total)
			assert.Len(t, result.Failed(), tt.wantFailed)
		})
	}
}

func TestValidator_ValidateEmpty(t *testing.T) {
	_, err := New().Validate(context.Background(), nil)
	require.Error(t, err)
}

func TestValidator_ValidateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Validate(ctx, []document.Document{{Source: "a", Content: validDoc}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidator_ValidateKeepsOrder(t *testing.T) {
	docs := make([]document.Document, 50)
	for i := range docs {
		content := validDoc
		if i%3 == 0 {
			content = invalidDoc
		}
		docs[i] = document.Document{Source: fmt.Sprintf("doc-%d", i), Content: content}
	}

	result, err := New(WithConcurrency(4)).Validate(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, result.Results, len(docs))

	for i, dr := range result.Results {
		assert.Equal(t, docs[i].Source, dr.Source)
		assert.Equal(t, nestlang.Validate(docs[i].Content), dr.Result)
	}
}

func TestValidator_ValidateText(t *testing.T) {
	result, err := New().ValidateText(context.Background(), "inline", invalidDoc)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	dr := result.Results[0]
	assert.Equal(t, "inline", dr.Source)
	assert.False(t, dr.Valid)
	assert.Equal(t, []string{
		"Line 2: Invalid type 'int' for field 'age'.",
		"Line 3: Invalid NestLang syntax.",
	}, dr.Errors)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestValidator_Metrics(t *testing.T) {
	failed := documentsValidated.WithLabelValues("fail")
	invalidType := validationIssues.WithLabelValues(string(nestlang.CodeInvalidType))
	beforeFail := counterValue(t, failed)
	beforeType := counterValue(t, invalidType)

	_, err := New().ValidateText(context.Background(), "m", invalidDoc)
	require.NoError(t, err)

	assert.InDelta(t, beforeFail+1, counterValue(t, failed), 0)
	assert.InDelta(t, beforeType+1, counterValue(t, invalidType), 0)
}
