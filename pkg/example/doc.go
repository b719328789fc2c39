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

// Package example renders NestLang examples for documentation and prompts.
//
// An Example pairs a NestLang declaration with the JSON object it describes.
// Rendering produces the record itself plus a text block:
//
//	<title>
//
//	<nestlang, trimmed>
//
//	<json, indented by two spaces>
//
//	Notes:
//	- <note>
//
// The Notes block is omitted when there are no notes and the whole block is
// trimmed of surrounding whitespace.
//
// Catalogs of examples can be loaded from YAML or JSON files, URLs, or
// ConfigMaps with LoadCatalog.
package example
