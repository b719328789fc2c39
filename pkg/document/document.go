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

package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/errors"
	"github.com/NVIDIA/nestlang/pkg/k8s/client"
	"github.com/NVIDIA/nestlang/pkg/serializer"
)

// StdinURI selects standard input as the source.
const StdinURI = "-"

// Extensions lists the ConfigMap key suffixes treated as NestLang documents.
var Extensions = []string{".nest", ".nestlang"}

// Document is a named NestLang source text.
type Document struct {
	// Source identifies where the content came from.
	Source string `json:"source" yaml:"source"`

	// Content is the decoded text.
	Content string `json:"-" yaml:"-"`
}

type loader struct {
	stdin      io.Reader
	kubeClient client.Interface
	kubeconfig string
	httpReader *serializer.HttpReader
}

// Option configures loading.
type Option func(*loader)

// WithStdin overrides the reader used for the "-" URI.
func WithStdin(r io.Reader) Option {
	return func(l *loader) {
		l.stdin = r
	}
}

// WithKubeClient sets the Kubernetes client used for ConfigMap URIs.
func WithKubeClient(c client.Interface) Option {
	return func(l *loader) {
		l.kubeClient = c
	}
}

// WithKubeconfig sets the kubeconfig path used when no client is given.
func WithKubeconfig(path string) Option {
	return func(l *loader) {
		l.kubeconfig = path
	}
}

// WithHTTPReader sets the reader used for remote URIs.
func WithHTTPReader(r *serializer.HttpReader) Option {
	return func(l *loader) {
		l.httpReader = r
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	if l.httpReader == nil {
		l.httpReader = serializer.NewHttpReader()
	}
	return l
}

// Load reads the document(s) addressed by uri. A ConfigMap URI without a key
// may yield several documents; every other form yields exactly one.
func Load(ctx context.Context, uri string, opts ...Option) ([]Document, error) {
	return newLoader(opts).load(ctx, uri)
}

// LoadAll loads every uri in order and concatenates the results.
func LoadAll(ctx context.Context, uris []string, opts ...Option) ([]Document, error) {
	if len(uris) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "no document sources given")
	}

	l := newLoader(opts)
	docs := make([]Document, 0, len(uris))
	for _, uri := range uris {
		loaded, err := l.load(ctx, uri)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

func (l *loader) load(ctx context.Context, uri string) ([]Document, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "document source is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.DocumentLoadTimeout)
	defer cancel()

	slog.Debug("loading document", "source", uri)

	switch {
	case uri == StdinURI:
		if l.stdin == nil {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "stdin is not available")
		}
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read stdin", err)
		}
		return l.single(uri, data)

	case serializer.IsRemoteURL(uri):
		data, err := l.httpReader.ReadWithContext(ctx, uri)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to fetch document", err,
				map[string]any{"source": uri})
		}
		return l.single(uri, data)

	case strings.HasPrefix(uri, serializer.ConfigMapURIScheme):
		return l.loadConfigMap(ctx, uri)

	default:
		data, err := os.ReadFile(uri)
		if err != nil {
			code := errors.ErrCodeInternal
			if os.IsNotExist(err) {
				code = errors.ErrCodeNotFound
			}
			return nil, errors.WrapWithContext(code, "failed to read document", err,
				map[string]any{"source": uri})
		}
		return l.single(uri, data)
	}
}

func (l *loader) single(source string, data []byte) ([]Document, error) {
	content, err := Decode(data)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to decode document", err,
			map[string]any{"source": source})
	}
	return []Document{{Source: source, Content: content}}, nil
}

func (l *loader) loadConfigMap(ctx context.Context, uri string) ([]Document, error) {
	ref, err := serializer.ParseConfigMapURI(uri)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid ConfigMap URI", err)
	}

	k8s := l.kubeClient
	if k8s == nil {
		k8s, _, err = client.ForKubeconfig(l.kubeconfig)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
	}

	data, err := serializer.ReadConfigMapData(ctx, k8s, ref.Namespace, ref.Name)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to read ConfigMap", err,
			map[string]any{"source": uri})
	}

	if ref.Key != "" {
		content, ok := data[ref.Key]
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("ConfigMap %s/%s has no key %q", ref.Namespace, ref.Name, ref.Key),
				map[string]any{"source": uri})
		}
		return l.single(ref.String(), []byte(content))
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if hasDocumentExtension(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("ConfigMap %s/%s has no NestLang keys", ref.Namespace, ref.Name),
			map[string]any{"source": uri, "extensions": Extensions})
	}
	sort.Strings(keys)

	docs := make([]Document, 0, len(keys))
	for _, k := range keys {
		keyRef := ref
		keyRef.Key = k
		loaded, err := l.single(keyRef.String(), []byte(data[k]))
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

func hasDocumentExtension(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Decode converts raw bytes to text. A UTF-8 or UTF-16 byte order mark picks
// the encoding and is removed; without one the bytes are read as UTF-8.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}
	return string(out), nil
}
