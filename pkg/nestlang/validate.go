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

// Validate checks a NestLang document and returns every error found.
//
// Malformed input never causes a failure; problems are reported in the
// result. Line numbers in messages count non-blank lines only, so blank
// lines do not shift them.
func Validate(text string) Result {
	var (
		rep   report
		stack IndentStack
	)

	for _, line := range Scan(text) {
		c := Classify(line)
		if c.Kind == KindInvalid {
			rep.add(Issue{Line: line.Index, Code: c.Code, Message: c.Message})
			continue
		}

		rep.add(checkDeclaration(line, c)...)
		stack.Settle(line.Indent)
	}

	return rep.result()
}
