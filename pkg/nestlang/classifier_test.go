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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    Classified
	}{
		{
			content: "title: (string)",
			want:    Classified{Kind: KindKey, Key: "title", Type: "string"},
		},
		{
			content: "title:",
			want:    Classified{Kind: KindKey, Key: "title"},
		},
		{
			content: "user_2:   (object)",
			want:    Classified{Kind: KindKey, Key: "user_2", Type: "object"},
		},
		{
			content: "title: extra",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidKeySyntax,
				Message: "Line 7: Invalid key syntax.",
			},
		},
		{
			content: "my-key: (string)",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidKeySyntax,
				Message: "Line 7: Invalid key syntax.",
			},
		},
		{
			content: "-name: the name (string)",
			want:    Classified{Kind: KindChildField, Key: "name", Description: "the name", Type: "string"},
		},
		{
			content: "-name: the name",
			want:    Classified{Kind: KindChildField, Key: "name", Description: "the name"},
		},
		{
			content: "-count: (number)",
			want:    Classified{Kind: KindChildField, Key: "count", Type: "number"},
		},
		{
			content: "-count:",
			want:    Classified{Kind: KindChildField, Key: "count"},
		},
		{
			content: "-bad",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidChildFieldSyntax,
				Message: "Line 7: Invalid child field syntax.",
			},
		},
		{
			content: "- spaced: no",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidChildFieldSyntax,
				Message: "Line 7: Invalid child field syntax.",
			},
		},
		{
			content: "-x: a\rb",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidChildFieldSyntax,
				Message: "Line 7: Invalid child field syntax.",
			},
		},
		{
			content: "-x: a\u2028b",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidChildFieldSyntax,
				Message: "Line 7: Invalid child field syntax.",
			},
		},
		{
			content: "title:\u00a0(string)",
			want:    Classified{Kind: KindKey, Key: "title", Type: "string"},
		},
		{
			content: "-name: the name\u3000(int)",
			want:    Classified{Kind: KindChildField, Key: "name", Description: "the name", Type: "int"},
		},
		{
			content: "just words",
			want: Classified{
				Kind:    KindInvalid,
				Code:    CodeInvalidSyntax,
				Message: "Line 7: Invalid NestLang syntax.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got := Classify(Line{Index: 7, Content: tt.content})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KeyDeclaration", KindKey.String())
	assert.Equal(t, "ChildField", KindChildField.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
}
