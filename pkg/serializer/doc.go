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

// Package serializer provides encoding and decoding of NestLang tool output in
// multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented with two spaces
//   - Used for API responses and rendered example payloads
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE listing for terminal viewing
//   - Write-only (no deserialization support)
//
// # Destinations and Sources
//
// Writers target stdout, a local file, or a Kubernetes ConfigMap
// (cm://namespace/name). Readers accept local files, HTTP/HTTPS URLs
// (downloaded with HttpReader), and ConfigMap URIs.
//
// # Usage - Encoding
//
//	ser := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	defer func() {
//	    if c, ok := ser.(serializer.Closer); ok {
//	        _ = c.Close()
//	    }
//	}()
//	if err := ser.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	catalog, err := serializer.FromFile[[]example.Example]("examples.yaml")
//
// # HTTP Responses
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// RespondJSON buffers the encoding before writing headers so a failed
// encoding never produces a partial response.
package serializer
