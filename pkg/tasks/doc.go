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

// Package tasks contains the simulated background work of Service B.
//
// Every simulation sleeps for a fixed duration, returns a literal, or loops
// over a fixed list. Interruption is modelled as context cancellation: a
// cancelled sleep is logged and swallowed, never propagated as a failure.
//
// # Simulations
//
//   - PerformTask: the 2s background task run by the startup batch
//   - ExecuteWithRetry: up to 3 attempts, where only interruption fails an attempt
//   - SchedulePeriodic: PerformTask on a worker pool every 5s
//   - LoadConfiguration, SendNotification, ProcessData: sleep-and-log
//   - RunBusinessLogic: fetch, process with a per-record delay, and log-only save
//
// Durations are Simulator fields so callers and tests can shorten them:
//
//	sim := tasks.NewSimulator(tasks.WithTaskDuration(10 * time.Millisecond))
//	res := sim.ExecuteWithRetry(ctx)
package tasks
