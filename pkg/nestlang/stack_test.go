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

func TestIndentStackSettle(t *testing.T) {
	tests := []struct {
		name    string
		indents []int
		want    []int
	}{
		{
			name:    "single",
			indents: []int{0},
			want:    []int{0},
		},
		{
			name:    "deeper lines stack up",
			indents: []int{0, 2, 4},
			want:    []int{0, 2, 4},
		},
		{
			name:    "equal indent replaces top",
			indents: []int{0, 2, 2},
			want:    []int{0, 2},
		},
		{
			name:    "shallower line closes deeper entries",
			indents: []int{0, 2, 4, 2},
			want:    []int{0, 2},
		},
		{
			name:    "back to root",
			indents: []int{0, 2, 4, 0},
			want:    []int{0},
		},
		{
			name:    "starting indented",
			indents: []int{4, 2, 6},
			want:    []int{2, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s IndentStack
			for _, in := range tt.indents {
				s.Settle(in)

				got := s.Indents()
				for i := 1; i < len(got); i++ {
					assert.Less(t, got[i-1], got[i], "indents must strictly increase")
				}
			}
			assert.Equal(t, tt.want, s.Indents())
			assert.Equal(t, len(tt.want), s.Depth())
		})
	}
}

func TestIndentStackIndentsIsCopy(t *testing.T) {
	var s IndentStack
	s.Settle(0)
	got := s.Indents()
	got[0] = 99
	assert.Equal(t, []int{0}, s.Indents())
}
