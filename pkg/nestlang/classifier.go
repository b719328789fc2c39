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
	"fmt"
	"regexp"
	"strings"
)

// Kind is the grammatical form of a line.
type Kind int

const (
	// KindInvalid marks a line that matches no accepted form.
	KindInvalid Kind = iota
	// KindKey marks a key declaration such as "title: (string)".
	KindKey
	// KindChildField marks a child field such as "-name: full name (string)".
	KindChildField
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "KeyDeclaration"
	case KindChildField:
		return "ChildField"
	default:
		return "Invalid"
	}
}

const (
	// space matches the same characters as isSpace.
	space = `[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`
	// char matches any character except a line terminator.
	char = `[^\n\r\x{2028}\x{2029}]`
)

var (
	keyPattern   = regexp.MustCompile(`^([a-zA-Z0-9_]+):` + space + `*(?:\((` + char + `*?)\))?$`)
	childPattern = regexp.MustCompile(`^-([a-zA-Z0-9_]+):` + space + `*(` + char + `*?)(?:` + space + `*\((` + char + `*?)\))?$`)
)

// Classified is the result of classifying one line.
// Invalid lines carry the Code and Message of the syntax error; valid ones
// carry the extracted Key, Type, and (child fields only) Description.
type Classified struct {
	Kind        Kind
	Key         string
	Type        string
	Description string

	Code    Code
	Message string
}

// Classify determines the grammatical form of a line.
// Rules are applied in priority order: key declaration, child field, invalid.
func Classify(line Line) Classified {
	content := line.Content

	switch {
	case !strings.HasPrefix(content, "-") && strings.Contains(content, ":"):
		m := keyPattern.FindStringSubmatch(content)
		if m == nil {
			return invalid(line, CodeInvalidKeySyntax, "Invalid key syntax.")
		}
		return Classified{
			Kind: KindKey,
			Key:  m[1],
			Type: m[2],
		}

	case strings.HasPrefix(content, "-"):
		m := childPattern.FindStringSubmatch(content)
		if m == nil {
			return invalid(line, CodeInvalidChildFieldSyntax, "Invalid child field syntax.")
		}
		return Classified{
			Kind:        KindChildField,
			Key:         m[1],
			Description: m[2],
			Type:        m[3],
		}

	default:
		return invalid(line, CodeInvalidSyntax, "Invalid NestLang syntax.")
	}
}

func invalid(line Line, code Code, msg string) Classified {
	return Classified{
		Kind:    KindInvalid,
		Code:    code,
		Message: fmt.Sprintf("Line %d: %s", line.Index, msg),
	}
}
