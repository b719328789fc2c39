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
	"time"

	"github.com/NVIDIA/nestlang/pkg/header"
	"github.com/NVIDIA/nestlang/pkg/nestlang"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates every document is valid.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more documents have errors.
	ValidationStatusFail ValidationStatus = "fail"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-document results in input order.
	Results []DocumentResult `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Passed is the count of valid documents.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of documents with at least one error.
	Failed int `json:"failed" yaml:"failed"`

	// Total is the number of documents validated.
	Total int `json:"total" yaml:"total"`

	// Errors is the number of errors across all documents.
	Errors int `json:"errors" yaml:"errors"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// DocumentResult is the engine result for one document.
type DocumentResult struct {
	// Source identifies the validated document.
	Source string `json:"source" yaml:"source"`

	nestlang.Result `json:",inline" yaml:",inline"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]DocumentResult, 0),
	}
}

// Failed returns the results of invalid documents.
func (r *ValidationResult) Failed() []DocumentResult {
	failed := make([]DocumentResult, 0, r.Summary.Failed)
	for _, dr := range r.Results {
		if !dr.Valid {
			failed = append(failed, dr)
		}
	}
	return failed
}
