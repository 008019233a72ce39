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
// Package server provides the reusable HTTP host for Service B.
//
// # Architecture
//
// A Server owns a single http.ServeMux. System endpoints are registered
// directly; application routes passed through WithHandler are wrapped in
// the middleware chain:
//
//   - metrics: request count, latency and in-flight gauge (Prometheus)
//   - version: API version negotiation through the Accept header
//   - request ID: X-Request-Id propagation, UUID validated
//   - panic recovery: converts handler panics into 500 responses
//   - rate limiting: token bucket (golang.org/x/time/rate)
//   - logging: debug level request start and completion
//
// # Usage
//
//	s := server.New(
//	    server.WithName("serviceb"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	    server.WithReadinessCheck(svc.HealthCheck),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then drains in-flight requests for up to Config.ShutdownTimeout.
//
// # System Endpoints
//
//	GET /         server name, version, readiness and route list
//	GET /health   liveness, always 200 while the process serves
//	GET /ready    200 once listening and the readiness check passes, else 503
//	GET /metrics  Prometheus exposition
//
// # Errors
//
// Error responses share one JSON shape (ErrorResponse):
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
//
// # Configuration
//
// Defaults come from pkg/defaults and may be overridden by environment:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
package server
