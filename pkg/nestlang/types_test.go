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

func TestResolveType(t *testing.T) {
	assert.Equal(t, DefaultType, ResolveType(""))
	assert.Equal(t, "number", ResolveType("number"))
	assert.Equal(t, "banana", ResolveType("banana"))
}

func TestIsAllowedType(t *testing.T) {
	for _, name := range SupportedTypes() {
		assert.True(t, IsAllowedType(name), name)
	}

	for _, name := range []string{"", "String", "int", "list", "map", " string"} {
		assert.False(t, IsAllowedType(name), "%q", name)
	}
}
