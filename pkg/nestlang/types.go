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

import "fmt"

// DefaultType is the type of a declaration without a type annotation.
const DefaultType = "string"

var allowedTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"object":  true,
	"array":   true,
}

// SupportedTypes returns the allowed type names in declaration order.
func SupportedTypes() []string {
	return []string{"string", "number", "boolean", "object", "array"}
}

// IsAllowedType reports whether name is in the allowed type set.
func IsAllowedType(name string) bool {
	return allowedTypes[name]
}

// ResolveType returns the effective type for a declaration.
// An absent or empty annotation resolves to DefaultType.
func ResolveType(declared string) string {
	if declared == "" {
		return DefaultType
	}
	return declared
}

// checkDeclaration runs the type and description checks for a classified line
// and returns the issues found, type issue first.
func checkDeclaration(line Line, c Classified) []Issue {
	var issues []Issue

	noun := "key"
	if c.Kind == KindChildField {
		noun = "field"
	}

	if t := ResolveType(c.Type); !IsAllowedType(t) {
		issues = append(issues, Issue{
			Line:    line.Index,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("Line %d: Invalid type '%s' for %s '%s'.", line.Index, t, noun, c.Key),
		})
	}

	if c.Kind == KindChildField && len(c.Description) < 1 {
		issues = append(issues, Issue{
			Line:    line.Index,
			Code:    CodeMissingDescription,
			Message: fmt.Sprintf("Line %d: Description missing for field '%s'.", line.Index, c.Key),
		})
	}

	return issues
}
