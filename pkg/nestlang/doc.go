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

// Package nestlang implements the line classification and validation engine
// for NestLang documents.
//
// # Overview
//
// NestLang is a line-oriented, indentation-based notation for declaring schema
// keys, their optional types, and descriptions of nested fields:
//
//	user: (object)
//	  -name: full name of the user (string)
//	  -age: age in years (number)
//	tags: (array)
//
// Validation is a single pass over the document:
//
//  1. Scan: split the text into non-blank lines, each with a 1-based
//     sequence index and the width of its leading whitespace.
//  2. Classify: decide whether a line is a key declaration, a child field
//     declaration, or invalid, extracting key, type, and description.
//  3. Check: resolve the declared type against the allowed set and require a
//     description on child fields.
//  4. Report: collect errors in line order.
//
// # Grammar
//
// Key declaration (content does not start with "-" and contains ":"):
//
//	^([a-zA-Z0-9_]+):\s*(?:\((.*?)\))?$
//
// Child field declaration (content starts with "-"):
//
//	^-([a-zA-Z0-9_]+):\s*(.*?)(?:\s*\((.*?)\))?$
//
// Anything else is invalid.
//
// # Types
//
// Allowed types are string, number, boolean, object, and array. A missing
// type annotation resolves to DefaultType.
//
// # Line numbers
//
// Reported line numbers count only non-blank lines. A document whose third
// physical line follows a blank line reports that line as "Line 2".
//
// # Usage
//
//	result := nestlang.Validate(text)
//	if !result.Valid {
//	    for _, msg := range result.Errors {
//	        fmt.Println(msg)
//	    }
//	}
//
// Validate holds no state between calls and is safe for concurrent use.
package nestlang
