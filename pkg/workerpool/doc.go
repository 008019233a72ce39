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

// Package workerpool provides a fixed-size pool of goroutines that run
// independent, fire-and-forget tasks.
//
// # Lifecycle
//
// A pool starts its workers in New and is either running or shut down.
// Shutdown stops intake, waits for queued and running tasks up to a grace
// period, then cancels the task context so that sleeping tasks return early
// and queued tasks are dropped. Calling Shutdown more than once is a no-op.
//
// # Cancellation
//
// Every task receives the pool context. Tasks that simulate work with a
// sleep should select on ctx.Done() so a forced shutdown interrupts them:
//
//	pool := workerpool.New(defaults.WorkerPoolSize)
//	_ = pool.Submit(func(ctx context.Context) {
//	    select {
//	    case <-time.After(2 * time.Second):
//	    case <-ctx.Done():
//	        slog.Error("task interrupted", "worker", workerpool.WorkerName(ctx))
//	    }
//	})
//	forced := pool.Shutdown(defaults.PoolShutdownGrace)
//
// # Metrics
//
// The pool exports Prometheus counters for submitted, completed, dropped and
// panicked tasks, a gauge of busy workers, and a counter of forced shutdowns.
package workerpool
