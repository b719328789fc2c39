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
	"log/slog"

	"github.com/NVIDIA/nestlang/pkg/header"
	"github.com/NVIDIA/nestlang/pkg/serializer"
)

// APIVersion is the API version of rendered example sets.
const APIVersion = "nestlang.dev/v1alpha1"

// Catalog is an ordered list of examples.
type Catalog []Example

// LoadCatalog reads a catalog from a YAML or JSON file, an HTTP(S) URL, or a
// cm://namespace/name[/key] ConfigMap URI.
func LoadCatalog(path string) (Catalog, error) {
	return LoadCatalogWithKubeconfig(path, "")
}

// LoadCatalogWithKubeconfig is LoadCatalog with an explicit kubeconfig for
// ConfigMap URIs.
func LoadCatalogWithKubeconfig(path, kubeconfig string) (Catalog, error) {
	c, err := serializer.FromFileWithKubeconfig[Catalog](path, kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load example catalog: %w", err)
	}
	slog.Debug("loaded example catalog", "path", path, "examples", len(*c))
	return *c, nil
}

// Builder returns a Builder holding the catalog's examples.
func (c Catalog) Builder() *Builder {
	b := NewBuilder()
	for _, ex := range c {
		b.Add(ex)
	}
	return b
}

// Validate runs the engine over every example in the catalog.
func (c Catalog) Validate() []Validation {
	return validateAll(c)
}

// Set is a rendered catalog with a header, as written by the CLI.
type Set struct {
	header.Header `json:",inline" yaml:",inline"`

	Examples []Rendered `json:"examples" yaml:"examples"`
}

// Render builds every example in the catalog into a Set.
func (c Catalog) Render(version string) (*Set, error) {
	rendered, err := c.Builder().BuildAll()
	if err != nil {
		return nil, err
	}
	s := &Set{Examples: rendered}
	s.Init(header.KindExampleSet, APIVersion, version)
	return s, nil
}
