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

package example

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/nestlang/pkg/nestlang"
	"github.com/NVIDIA/nestlang/pkg/serializer"
)

// Example is a NestLang declaration with a matching JSON instance.
type Example struct {
	Title    string   `json:"title" yaml:"title"`
	NestLang string   `json:"nestlang" yaml:"nestlang"`
	JSON     any      `json:"json" yaml:"json"`
	Notes    []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Rendered is an example together with its text form.
type Rendered struct {
	Object Example `json:"object" yaml:"object"`
	String string  `json:"string" yaml:"string"`
}

// Validation is the engine result for one example's NestLang text.
type Validation struct {
	Title  string          `json:"title" yaml:"title"`
	Result nestlang.Result `json:"result" yaml:"result"`
}

// Builder accumulates examples for rendering.
type Builder struct {
	examples []Example
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an example and returns the builder for chaining.
func (b *Builder) Add(ex Example) *Builder {
	b.examples = append(b.examples, ex)
	return b
}

// Len returns the number of examples added.
func (b *Builder) Len() int {
	return len(b.examples)
}

// Build renders a single example.
func (b *Builder) Build(ex Example) (Rendered, error) {
	s, err := Format(ex)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Object: ex, String: s}, nil
}

// BuildAll renders every added example in insertion order.
func (b *Builder) BuildAll() ([]Rendered, error) {
	out := make([]Rendered, 0, len(b.examples))
	for i, ex := range b.examples {
		r, err := b.Build(ex)
		if err != nil {
			return nil, fmt.Errorf("example %d (%q): %w", i, ex.Title, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Validate runs the engine over every added example.
func (b *Builder) Validate() []Validation {
	return validateAll(b.examples)
}

// Format returns the text form of ex.
// The JSON value must be encodable; a nil value renders as "null".
func Format(ex Example) (string, error) {
	js, err := serializer.MarshalIndentJSON(ex.JSON)
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}

	notes := ""
	if len(ex.Notes) > 0 {
		items := make([]string, 0, len(ex.Notes))
		for _, n := range ex.Notes {
			items = append(items, "- "+n)
		}
		notes = "Notes:\n" + strings.Join(items, "\n")
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(ex.Title)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(ex.NestLang))
	sb.WriteString("\n\n")
	sb.Write(js)
	sb.WriteString("\n\n")
	sb.WriteString(notes)
	sb.WriteString("\n")

	return strings.TrimSpace(sb.String()), nil
}

func validateAll(examples []Example) []Validation {
	out := make([]Validation, 0, len(examples))
	for _, ex := range examples {
		out = append(out, Validation{
			Title:  ex.Title,
			Result: nestlang.Validate(ex.NestLang),
		})
	}
	return out
}

// Invalid filters vs down to failed validations.
func Invalid(vs []Validation) []Validation {
	var out []Validation
	for _, v := range vs {
		if !v.Result.Valid {
			out = append(out, v)
		}
	}
	return out
}
