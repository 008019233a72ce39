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

package workerpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_tasks_submitted_total",
			Help: "Total number of tasks accepted by the worker pool",
		},
		[]string{"pool"},
	)

	tasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_tasks_completed_total",
			Help: "Total number of tasks that returned",
		},
		[]string{"pool"},
	)

	tasksDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_tasks_dropped_total",
			Help: "Total number of queued tasks discarded by a forced shutdown",
		},
		[]string{"pool"},
	)

	taskPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_task_panics_total",
			Help: "Total number of panics recovered in pool tasks",
		},
		[]string{"pool"},
	)

	busyWorkers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "serviceb_pool_busy_workers",
			Help: "Current number of workers running a task",
		},
		[]string{"pool"},
	)

	scheduleSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_schedule_skips_total",
			Help: "Total number of periodic ticks skipped because the previous run was still in flight",
		},
		[]string{"pool"},
	)

	forcedShutdowns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceb_pool_forced_shutdowns_total",
			Help: "Total number of shutdowns that exceeded the grace period",
		},
		[]string{"pool"},
	)
)
