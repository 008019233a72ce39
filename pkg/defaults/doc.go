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

// Package defaults provides centralized configuration constants for Service B.
//
// This package defines the worker pool size, the simulated work durations and
// the HTTP server timeouts used across the codebase. Centralizing these values
// keeps the bootstrap, the task simulations and the server in agreement.
//
// # Categories
//
//   - Worker pool: size and shutdown grace period
//   - Simulations: sleep durations, retry bound, heavy loop size
//   - Server timeouts: for HTTP server configuration
//
// # Usage
//
//	import "github.com/NVIDIA/service-b/pkg/defaults"
//
//	pool := workerpool.New(defaults.WorkerPoolSize)
//	defer pool.Shutdown(defaults.PoolShutdownGrace)
package defaults
