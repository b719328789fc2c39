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

// Package api provides the HTTP API of the NestLang validation service.
//
// This package is a thin layer over pkg/server: it configures logging, builds
// the validation and example handlers, and registers them as routes.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/validate         - Validate a NestLang document
//   - POST /v1/examples/render  - Render a list of examples
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # POST /v1/validate
//
// The body is the raw NestLang text. With Content-Type application/json or
// application/yaml the body is an object instead:
//
//	{"source": "user.nest", "nestlang": "user: (object)\n-name: Full name (string)"}
//
// The response is always 200 with the validation result; an invalid document
// is not an HTTP error:
//
//	{"valid": false, "errors": ["Line 2: Invalid NestLang syntax."], "issues": [...]}
//
// # POST /v1/examples/render
//
// The body is a JSON or YAML list of examples with title, nestlang, json,
// and optional notes. The response is the list of rendered examples, each
// with the original record under "object" and the text block under "string".
package api
