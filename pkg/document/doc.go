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

// Package document loads NestLang source text from local files, stdin,
// HTTP(S) URLs, and Kubernetes ConfigMaps.
//
// Supported URIs:
//
//	-                          standard input
//	./schema.nest              local file
//	https://host/schema.nest   remote file, fetched with serializer.HttpReader
//	cm://namespace/name        every .nest/.nestlang key of a ConfigMap, sorted by key
//	cm://namespace/name/key    a single ConfigMap key
//
// Content is decoded as UTF-8 unless a byte order mark selects UTF-16, and
// the BOM itself is dropped.
package document
