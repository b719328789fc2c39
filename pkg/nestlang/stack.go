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

// IndentStack tracks the nesting depth of declarations by indent width.
// It does not associate children with parents.
type IndentStack struct {
	entries []int
}

// Settle removes every entry whose indent is greater than or equal to indent
// and then pushes indent. Bottom-to-top indents stay strictly increasing.
func (s *IndentStack) Settle(indent int) {
	for len(s.entries) > 0 && s.entries[len(s.entries)-1] >= indent {
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, indent)
}

// Depth returns the number of open entries.
func (s *IndentStack) Depth() int {
	return len(s.entries)
}

// Indents returns a copy of the entries, bottom first.
func (s *IndentStack) Indents() []int {
	out := make([]int, len(s.entries))
	copy(out, s.entries)
	return out
}
