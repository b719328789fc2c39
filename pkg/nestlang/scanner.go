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

import (
	"strings"
	"unicode"
)

// Line is a single non-blank line of a document.
type Line struct {
	// Index is the 1-based position among non-blank lines only.
	Index int

	// Indent is the number of leading whitespace characters.
	Indent int

	// Content is the line with surrounding whitespace removed.
	Content string
}

// Scan splits text into its non-blank lines.
// Blank lines are dropped and do not consume an index.
func Scan(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))

	for _, r := range raw {
		content := strings.TrimFunc(r, isSpace)
		if content == "" {
			continue
		}
		lines = append(lines, Line{
			Index:   len(lines) + 1,
			Indent:  indentWidth(r),
			Content: content,
		})
	}

	return lines
}

// isSpace reports whether r is whitespace for trimming and indentation.
// The byte order mark counts as whitespace; U+0085 does not.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// indentWidth counts leading whitespace runes.
func indentWidth(s string) int {
	n := 0
	for _, r := range s {
		if !isSpace(r) {
			break
		}
		n++
	}
	return n
}
