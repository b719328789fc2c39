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

package nestlang

// Code classifies a validation issue.
type Code string

const (
	// CodeInvalidKeySyntax indicates a key-shaped line that does not match the key grammar.
	CodeInvalidKeySyntax Code = "INVALID_KEY_SYNTAX"
	// CodeInvalidChildFieldSyntax indicates a "-" line that does not match the child field grammar.
	CodeInvalidChildFieldSyntax Code = "INVALID_CHILD_FIELD_SYNTAX"
	// CodeInvalidType indicates a declared type outside the allowed set.
	CodeInvalidType Code = "INVALID_TYPE"
	// CodeMissingDescription indicates a child field with an empty description.
	CodeMissingDescription Code = "MISSING_DESCRIPTION"
	// CodeInvalidSyntax indicates a line that matches neither form.
	CodeInvalidSyntax Code = "INVALID_SYNTAX"
)

// Issue is a single validation error located at a sequence index.
type Issue struct {
	Line    int    `json:"line" yaml:"line"`
	Code    Code   `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of validating a document.
type Result struct {
	// Valid is true when no errors were found.
	Valid bool `json:"valid" yaml:"valid"`

	// Errors holds the error messages in line order.
	Errors []string `json:"errors" yaml:"errors"`

	// Issues holds the same errors with their line and code.
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// report accumulates issues in the order they are added.
type report struct {
	issues []Issue
}

func (r *report) add(issues ...Issue) {
	r.issues = append(r.issues, issues...)
}

func (r *report) result() Result {
	res := Result{
		Valid:  len(r.issues) == 0,
		Errors: make([]string, 0, len(r.issues)),
	}
	for _, is := range r.issues {
		res.Errors = append(res.Errors, is.Message)
	}
	if len(r.issues) > 0 {
		res.Issues = r.issues
	}
	return res
}
