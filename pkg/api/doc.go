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
// Package api is the Service B HTTP entry point.
//
// Serve loads configuration, configures structured logging, initializes the
// worker pool bootstrap (pkg/app), registers the /serviceb controller
// (pkg/serviceb) and runs the server (pkg/server) until shutdown:
//
//	if err := api.Serve(ctx, api.Options{ConfigPath: "serviceb.yaml"}); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (rate limited, request ID, metrics):
//   - GET /serviceb/*  see pkg/serviceb
//
// System endpoints:
//   - GET /         service index
//   - GET /health   liveness
//   - GET /ready    readiness, gated on the bootstrap health check
//   - GET /metrics  Prometheus metrics
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: HTTP drain budget (default: 30)
//   - LOG_LEVEL: debug, info, warn, error
//   - SERVICEB_MESSAGE: message echoed by /serviceb/info
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/service-b/pkg/api.version=1.0.0'"
package api
