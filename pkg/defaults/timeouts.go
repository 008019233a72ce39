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

package defaults

import "time"

// Worker pool sizing and lifecycle.
const (
	// WorkerPoolSize is the number of worker slots allocated at startup.
	// The same number of background tasks is submitted during init.
	WorkerPoolSize = 10

	// PoolShutdownGrace is how long the pool waits for in-flight tasks
	// before forcing termination.
	PoolShutdownGrace = 5 * time.Second
)

// Simulated work durations.
const (
	// TaskDuration is the simulated processing time of a background task.
	TaskDuration = 2 * time.Second

	// PeriodicTaskInterval is the fixed rate of the periodic task.
	PeriodicTaskInterval = 5 * time.Second

	// TaskMaxRetries bounds the attempts made by the retrying task.
	TaskMaxRetries = 3

	// ConfigLoadDuration is the simulated configuration load time.
	ConfigLoadDuration = 1 * time.Second

	// NotificationDuration is the simulated notification delivery time.
	NotificationDuration = 1 * time.Second

	// RecordProcessingDuration is the simulated per-record processing delay.
	RecordProcessingDuration = 1 * time.Second

	// DataProcessingDuration is the simulated bulk data processing time.
	DataProcessingDuration = 3 * time.Second

	// HeavyTaskIterations is the loop count of the heavy computation endpoint.
	HeavyTaskIterations int64 = 1_000_000_000
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// The heavy task endpoint can take several seconds.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
