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
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/document"
	"github.com/NVIDIA/nestlang/pkg/errors"
	"github.com/NVIDIA/nestlang/pkg/header"
	"github.com/NVIDIA/nestlang/pkg/nestlang"
)

const (
	// APIVersion is the API version for validation results.
	APIVersion = "nestlang.dev/v1alpha1"
)

// Validator validates NestLang documents.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Concurrency bounds the number of documents validated at once.
	Concurrency int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithConcurrency returns an Option that bounds parallel validation.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.Concurrency = n
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		Concurrency: defaults.ValidationConcurrency,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the engine over docs and returns the combined result.
// Results keep the order of docs.
func (v *Validator) Validate(ctx context.Context, docs []document.Document) (*ValidationResult, error) {
	start := time.Now()

	if len(docs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "no documents to validate")
	}

	results := make([]DocumentResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.Concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = DocumentResult{
				Source: doc.Source,
				Result: nestlang.Validate(doc.Content),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, APIVersion, v.Version)
	result.Results = results

	for _, dr := range results {
		recordResult(dr)
		if dr.Valid {
			result.Summary.Passed++
		} else {
			result.Summary.Failed++
			slog.Debug("document invalid",
				"source", dr.Source,
				"errors", len(dr.Errors))
		}
		result.Summary.Errors += len(dr.Errors)
	}

	result.Summary.Total = len(results)
	result.Summary.Duration = time.Since(start)
	if result.Summary.Failed > 0 {
		result.Summary.Status = ValidationStatusFail
	} else {
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"errors", result.Summary.Errors,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// ValidateText validates a single document given as text.
func (v *Validator) ValidateText(ctx context.Context, source, text string) (*ValidationResult, error) {
	return v.Validate(ctx, []document.Document{{Source: source, Content: text}})
}
