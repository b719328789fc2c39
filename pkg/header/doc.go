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

// Package header provides the common header stamped on documents produced by
// the NestLang tools.
//
// Every result written by the CLI or returned by the API carries a kind, an
// API version, and metadata with the creation timestamp and tool version:
//
//	kind: ValidationResult
//	apiVersion: nestlang.dev/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	var r Result
//	r.Init(header.KindValidationResult, APIVersion, version)
//
// Types embedding Header with `json:",inline" yaml:",inline"` serialize the
// header fields at the top level.
package header
