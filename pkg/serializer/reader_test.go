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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

type catalogEntry struct {
	Title    string `json:"title" yaml:"title"`
	NestLang string `json:"nestlang" yaml:"nestlang"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"catalog.json", FormatJSON},
		{"catalog.YAML", FormatYAML},
		{"catalog.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"out.table", FormatTable},
		{"catalog", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, IsRemoteURL("http://example.com/a.yaml"))
	assert.True(t, IsRemoteURL("https://example.com/a.yaml"))
	assert.False(t, IsRemoteURL("./a.yaml"))
	assert.False(t, IsRemoteURL("cm://ns/name"))
}

func TestNewReaderRejectsUnsupportedFormats(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	require.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	require.Error(t, err)
}

func TestReaderDeserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `[{"title":"User","nestlang":"user: (object)"}]`},
		{"yaml", FormatYAML, "- title: User\n  nestlang: \"user: (object)\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)
			defer r.Close()

			var got []catalogEntry
			require.NoError(t, r.Deserialize(&got))
			require.Len(t, got, 1)
			assert.Equal(t, "User", got[0].Title)
			assert.Equal(t, "user: (object)", got[0].NestLang)
		})
	}
}

func TestReaderDeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader("{not json"))
	require.NoError(t, err)

	var v map[string]any
	require.Error(t, r.Deserialize(&v))

	var nilReader *Reader
	require.Error(t, nilReader.Deserialize(&v))
	require.NoError(t, nilReader.Close())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: Product\n  nestlang: \"product: (object)\"\n"), 0o600))

	got, err := FromFile[[]catalogEntry](path)
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "Product", (*got)[0].Title)

	_, err = FromFile[[]catalogEntry](filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestFromFileRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"title":"Remote","nestlang":"a: (string)"}]`))
	}))
	defer srv.Close()

	got, err := FromFile[[]catalogEntry](srv.URL + "/catalog.json")
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "Remote", (*got)[0].Title)
}

func TestFromConfigMap(t *testing.T) {
	k8s := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "catalog", Namespace: "default"},
			Data: map[string]string{
				"content.yaml": "- title: FromDefaultKey\n  nestlang: \"a: (string)\"\n",
				"other.json":   `[{"title":"FromNamedKey","nestlang":"b: (number)"}]`,
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "default"},
		},
	)
	ctx := context.Background()

	got, err := FromConfigMap[[]catalogEntry](ctx, k8s, ConfigMapRef{Namespace: "default", Name: "catalog"})
	require.NoError(t, err)
	assert.Equal(t, "FromDefaultKey", (*got)[0].Title)

	got, err = FromConfigMap[[]catalogEntry](ctx, k8s, ConfigMapRef{Namespace: "default", Name: "catalog", Key: "other.json"})
	require.NoError(t, err)
	assert.Equal(t, "FromNamedKey", (*got)[0].Title)

	_, err = FromConfigMap[[]catalogEntry](ctx, k8s, ConfigMapRef{Namespace: "default", Name: "catalog", Key: "nope.json"})
	require.Error(t, err)

	_, err = FromConfigMap[[]catalogEntry](ctx, k8s, ConfigMapRef{Namespace: "default", Name: "empty"})
	require.Error(t, err)

	_, err = FromConfigMap[[]catalogEntry](ctx, k8s, ConfigMapRef{Namespace: "default", Name: "missing"})
	require.Error(t, err)
}
