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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/header"
	"github.com/NVIDIA/nestlang/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	// ConfigMapURIScheme is the URI scheme for ConfigMap sources and destinations.
	ConfigMapURIScheme = "cm://"

	// ConfigMapContentKeyPrefix prefixes the data key holding serialized content,
	// e.g. "content.yaml".
	ConfigMapContentKeyPrefix = "content."

	fieldManager = "nestlint"
)

// ConfigMapRef identifies a ConfigMap and, optionally, one of its data keys.
type ConfigMapRef struct {
	Namespace string
	Name      string
	Key       string
}

// String returns the reference in cm://namespace/name[/key] form.
func (r ConfigMapRef) String() string {
	s := ConfigMapURIScheme + r.Namespace + "/" + r.Name
	if r.Key != "" {
		s += "/" + r.Key
	}
	return s
}

// ParseConfigMapURI parses cm://namespace/name or cm://namespace/name/key.
func ParseConfigMapURI(uri string) (ConfigMapRef, error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)
	parts := strings.SplitN(path, "/", 3)
	if len(parts) < 2 {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	ref := ConfigMapRef{
		Namespace: strings.TrimSpace(parts[0]),
		Name:      strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		ref.Key = strings.TrimSpace(parts[2])
		if ref.Key == "" {
			return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI: key cannot be empty")
		}
	}

	if ref.Namespace == "" {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if ref.Name == "" {
		return ConfigMapRef{}, fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return ref, nil
}

// ConfigMapWriter writes serialized output into a ConfigMap using
// Server-Side Apply.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// ConfigMapWriterOption configures a ConfigMapWriter.
type ConfigMapWriterOption func(*ConfigMapWriter)

// WithConfigMapClient sets the Kubernetes client used for writes.
// Without it the shared client from the client package is used.
func WithConfigMapClient(c client.Interface) ConfigMapWriterOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// NewConfigMapWriter creates a writer for the given ConfigMap.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapWriterOption) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize encodes v and applies it as the ConfigMap's content.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	k8s := w.client
	if k8s == nil {
		var err error
		k8s, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	var (
		content []byte
		err     error
	)
	switch w.format {
	case FormatJSON:
		content, err = serializeJSON(v)
	case FormatYAML:
		content, err = serializeYAML(v)
	case FormatTable:
		content, err = serializeTable(v)
	default:
		return fmt.Errorf("unsupported format for ConfigMap: %s", w.format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize content: %w", err)
	}

	kind, version, timestamp := "unknown", "unknown", time.Now().UTC().Format(time.RFC3339)
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		md := h.GetMetadata()
		if s, ok := md["version"]; ok {
			version = s
		}
		if s, ok := md["timestamp"]; ok {
			timestamp = s
		}
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "nestlang",
			"app.kubernetes.io/component": strings.ToLower(kind),
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			ConfigMapContentKeyPrefix + w.format.Extension(): string(content),
			"format":    string(w.format),
			"timestamp": timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = k8s.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}

	return nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ReadConfigMapData returns the data map of a ConfigMap.
func ReadConfigMapData(ctx context.Context, k8s client.Interface, namespace, name string) (map[string]string, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}
	return cm.Data, nil
}
