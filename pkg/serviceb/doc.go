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

// Package serviceb implements the Service B REST endpoints.
//
// Every endpoint is a stateless simulation: it returns a fixed string or list,
// optionally after a busy loop. None validates input, touches a store, or
// calls another service.
//
// # Endpoints
//
// All endpoints answer GET under /serviceb; other methods get 405.
//
//	GET /serviceb/health              ServiceB is healthy: <time>
//	GET /serviceb/info                ServiceB Info: <message> | Time: <time>
//	GET /serviceb/connected-services  ["ServiceA","ServiceC","ServiceD"]
//	GET /serviceb/heavy-task          Heavy task completed at <time>
//	GET /serviceb/current-time        Current server time: <time>
//	GET /serviceb/fetch-data          ["Data 1","Data 2","Data 3"]
//	GET /serviceb/uptime              System uptime: 500 hours
//	GET /serviceb/memory-usage        Memory usage: 1024MB
//	GET /serviceb/clear-cache         Cache cleared successfully at <time>
//	GET /serviceb/status              ServiceB status: Running smoothly at <time>
//	GET /serviceb/stats               fixed JSON-like statistics text
//	GET /serviceb/shutdown            System shutting down at <time>
//
// Timestamps use the ISO-8601 local date-time form, e.g.
// 2025-01-15T10:30:00.123 (see FormatLocalDateTime).
//
// The shutdown endpoint only reports; it does not stop the process.
package serviceb
