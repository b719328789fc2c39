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

// Package defaults provides centralized configuration constants for the
// NestLang tools.
//
// Timeouts, limits, and concurrency defaults live here so the CLI and the API
// server tune the same values.
//
// # Categories
//
//   - Loader timeouts: reading documents from files, URLs, and ConfigMaps
//   - Validation limits: batch concurrency
//   - Server timeouts and request limits
//   - HTTP client timeouts: for outbound requests
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.DocumentLoadTimeout)
//	defer cancel()
package defaults
