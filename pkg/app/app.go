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

// Package app is the Service B bootstrap: it owns the worker pool, fires the
// startup batch of background tasks and exposes the lifecycle hooks the
// hosting runtime calls (Init, HealthCheck, Shutdown, HandleError).
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/errors"
	"github.com/NVIDIA/service-b/pkg/tasks"
	"github.com/NVIDIA/service-b/pkg/workerpool"
)

const poolName = "serviceb"

// Option configures a Service.
type Option func(*Service)

// WithPoolSize sets the number of worker slots and startup tasks.
func WithPoolSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.poolSize = n
		}
	}
}

// WithShutdownGrace sets how long Shutdown waits before forcing termination.
func WithShutdownGrace(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.grace = d
		}
	}
}

// WithSimulator replaces the task simulator.
func WithSimulator(sim *tasks.Simulator) Option {
	return func(s *Service) {
		if sim != nil {
			s.sim = sim
		}
	}
}

// Service holds the bootstrap state. The zero pool means not initialized.
type Service struct {
	sim      *tasks.Simulator
	poolSize int
	grace    time.Duration

	mu   sync.Mutex
	pool *workerpool.Pool
}

// New returns an uninitialized Service.
func New(opts ...Option) *Service {
	s := &Service{
		sim:      tasks.NewSimulator(),
		poolSize: defaults.WorkerPoolSize,
		grace:    defaults.PoolShutdownGrace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init allocates the worker pool and submits one background task per
// worker slot.
func (s *Service) Init(_ context.Context) error {
	slog.Info("initializing service b")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		return errors.New(errors.ErrCodeInvalidRequest, "service already initialized")
	}

	s.initializeResources()
	return s.startBackgroundTasks()
}

func (s *Service) initializeResources() {
	slog.Info("setting up resources")
	s.pool = workerpool.New(s.poolSize, workerpool.WithName(poolName))
	slog.Info("resources initialized successfully", "workers", s.poolSize)
}

func (s *Service) startBackgroundTasks() error {
	slog.Info("starting background tasks")
	for i := 0; i < s.poolSize; i++ {
		if err := s.pool.Submit(s.sim.BackgroundTask); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal,
				"failed to submit background task", err, map[string]any{"index": i})
		}
	}
	slog.Info("background tasks started successfully", "count", s.poolSize)
	return nil
}

// Pool returns the worker pool, or nil before Init.
func (s *Service) Pool() *workerpool.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool
}

// Shutdown stops the worker pool, forcing termination after the grace
// period. It reports whether termination was forced. Without a pool, or
// on repeated calls, it only logs.
func (s *Service) Shutdown() bool {
	slog.Info("shutting down service b")

	s.mu.Lock()
	pool := s.pool
	s.mu.Unlock()

	forced := false
	if pool != nil {
		forced = pool.Shutdown(s.grace)
		if forced {
			slog.Warn("forcing shutdown of background tasks", "grace", s.grace.String())
		}
	}

	slog.Info("service b shut down completed")
	return forced
}

// HealthCheck reports the service health. The simulated check is always
// healthy.
func (s *Service) HealthCheck() bool {
	slog.Info("performing health check")
	healthy := true
	slog.Info("health check result", "status", healthStatus(healthy))
	return healthy
}

func healthStatus(healthy bool) string {
	if healthy {
		return "HEALTHY"
	}
	return "UNHEALTHY"
}

// HandleError logs a critical error and runs the shutdown path.
func (s *Service) HandleError(err error) {
	slog.Error("critical error occurred", "error", err)
	s.Shutdown()
	slog.Info("service b has handled the error and cleaned up resources")
}

// SchedulePeriodicTask schedules the periodic simulation on the pool.
func (s *Service) SchedulePeriodicTask(ctx context.Context) error {
	pool := s.Pool()
	if pool == nil {
		return errors.New(errors.ErrCodeUnavailable, "service not initialized")
	}
	return s.sim.SchedulePeriodic(ctx, pool)
}

// ExecuteTaskWithRetry runs the retrying simulation on the caller's goroutine.
func (s *Service) ExecuteTaskWithRetry(ctx context.Context) tasks.RetryResult {
	return s.sim.ExecuteWithRetry(ctx)
}

// RunBusinessLogic runs the fetch, process and save simulation.
func (s *Service) RunBusinessLogic(ctx context.Context) tasks.BusinessResult {
	return s.sim.RunBusinessLogic(ctx)
}

// LoadConfiguration runs the simulated configuration load.
func (s *Service) LoadConfiguration(ctx context.Context) bool {
	return s.sim.LoadConfiguration(ctx)
}

// SendNotification runs the simulated notification delivery.
func (s *Service) SendNotification(ctx context.Context, message string) string {
	return s.sim.SendNotification(ctx, message)
}

// ProcessData runs the simulated bulk processing step.
func (s *Service) ProcessData(ctx context.Context) bool {
	return s.sim.ProcessData(ctx)
}
