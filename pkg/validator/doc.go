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

// Package validator validates batches of NestLang documents.
//
// # Overview
//
// A Validator runs the nestlang engine over each document, fanning out
// across a bounded number of goroutines, and collects the per-document
// results in input order together with a summary.
//
// # Usage
//
//	docs, err := document.LoadAll(ctx, []string{"user.nest", "cm://default/schemas"})
//	if err != nil {
//	    return err
//	}
//	v := validator.New(validator.WithVersion(version), validator.WithConcurrency(4))
//	result, err := v.Validate(ctx, docs)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//
// # Result Structure
//
// ValidationResult carries a header (kind ValidationResult, apiVersion
// nestlang.dev/v1alpha1), a Summary with pass/fail counts and the total
// number of errors, and Results with one DocumentResult per input document.
//
// # Metrics
//
// Each validated document increments nestlang_documents_validated_total
// labeled by status, and each issue increments
// nestlang_validation_issues_total labeled by issue code.
package validator
