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

// Package server provides the reusable HTTP server behind the NestLang API.
//
// # Architecture
//
// The server wraps net/http with:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header
//   - API version negotiation via Accept: application/vnd.nestlang.v1+json
//   - Request body size limits
//   - Panic recovery
//   - Prometheus metrics on /metrics
//   - Health and readiness probes for Kubernetes
//   - systemd readiness notification when run as a notify service
//   - Graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("nestlintd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/validate": handleValidate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// System endpoints bypass the middleware chain:
//
//	GET /         service info and route list
//	GET /health   liveness probe
//	GET /ready    readiness probe, 503 until the listener is bound
//	GET /metrics  Prometheus metrics
//
// # Configuration
//
// Defaults come from the defaults package and can be overridden with the
// PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT, and RATE_LIMIT_BURST
// environment variables or replaced with WithConfig.
//
// # Errors
//
// All errors are JSON ErrorResponse bodies:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "2f7c1f6e-...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
package server
