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

package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/errors"
	"github.com/NVIDIA/service-b/pkg/workerpool"
)

// Simulator runs the simulated tasks with configurable durations.
type Simulator struct {
	TaskDuration           time.Duration
	PeriodicInterval       time.Duration
	MaxRetries             int
	ConfigLoadDuration     time.Duration
	NotificationDuration   time.Duration
	RecordDuration         time.Duration
	DataProcessingDuration time.Duration
	SaveBatchSize          int

	fetch func() []string
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithTaskDuration sets the sleep of PerformTask.
func WithTaskDuration(d time.Duration) Option {
	return func(s *Simulator) { s.TaskDuration = d }
}

// WithPeriodicInterval sets the rate of SchedulePeriodic.
func WithPeriodicInterval(d time.Duration) Option {
	return func(s *Simulator) { s.PeriodicInterval = d }
}

// WithMaxRetries sets the attempt bound of ExecuteWithRetry.
func WithMaxRetries(n int) Option {
	return func(s *Simulator) { s.MaxRetries = n }
}

// WithStepDuration sets the config load, notification, per-record and data
// processing sleeps to d.
func WithStepDuration(d time.Duration) Option {
	return func(s *Simulator) {
		s.ConfigLoadDuration = d
		s.NotificationDuration = d
		s.RecordDuration = d
		s.DataProcessingDuration = d
	}
}

// WithFetcher replaces the record source of RunBusinessLogic.
func WithFetcher(fetch func() []string) Option {
	return func(s *Simulator) { s.fetch = fetch }
}

// NewSimulator returns a Simulator with the production durations.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		TaskDuration:           defaults.TaskDuration,
		PeriodicInterval:       defaults.PeriodicTaskInterval,
		MaxRetries:             defaults.TaskMaxRetries,
		ConfigLoadDuration:     defaults.ConfigLoadDuration,
		NotificationDuration:   defaults.NotificationDuration,
		RecordDuration:         defaults.RecordProcessingDuration,
		DataProcessingDuration: defaults.DataProcessingDuration,
		SaveBatchSize:          2,
		fetch:                  fetchRecords,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sleep waits for d or until ctx is done, in which case it returns an
// INTERRUPTED error wrapping the context error.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInterrupted, "sleep interrupted", err)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.Wrap(errors.ErrCodeInterrupted, "sleep interrupted", ctx.Err())
	}
}

// PerformTask simulates a unit of background work.
func (s *Simulator) PerformTask(ctx context.Context) error {
	slog.Info("performing task")
	if err := sleep(ctx, s.TaskDuration); err != nil {
		return err
	}
	slog.Info("task completed", "worker", workerpool.WorkerName(ctx))
	return nil
}

// BackgroundTask adapts PerformTask for a worker pool. Interruption is
// logged and swallowed.
func (s *Simulator) BackgroundTask(ctx context.Context) {
	slog.Info("background task started", "worker", workerpool.WorkerName(ctx))
	if err := s.PerformTask(ctx); err != nil {
		slog.Error("task interrupted", "worker", workerpool.WorkerName(ctx), "error", err)
	}
}

// RetryResult reports the outcome of ExecuteWithRetry.
type RetryResult struct {
	Attempts  int  `json:"attempts" yaml:"attempts"`
	Succeeded bool `json:"succeeded" yaml:"succeeded"`
}

// ExecuteWithRetry runs PerformTask up to MaxRetries times. An attempt only
// fails when it is interrupted.
func (s *Simulator) ExecuteWithRetry(ctx context.Context) RetryResult {
	var res RetryResult
	for res.Attempts < s.MaxRetries && !res.Succeeded {
		slog.Info("attempting to execute task", "attempt", res.Attempts+1)
		err := s.PerformTask(ctx)
		res.Attempts++
		if err == nil {
			res.Succeeded = true
			slog.Info("task executed successfully")
			break
		}

		slog.Error("task failed", "attempt", res.Attempts, "error", err)
		if res.Attempts >= s.MaxRetries {
			slog.Error("max retry attempts reached, task failed")
		}
	}
	return res
}

// SchedulePeriodic runs PerformTask on pool immediately and then at the
// periodic interval until ctx is cancelled or the pool shuts down.
func (s *Simulator) SchedulePeriodic(ctx context.Context, pool *workerpool.Pool) error {
	slog.Info("scheduling periodic task", "interval", s.PeriodicInterval.String())

	err := pool.Schedule(ctx, s.PeriodicInterval, func(ctx context.Context) {
		slog.Info("executing periodic task")
		if err := s.PerformTask(ctx); err != nil {
			slog.Error("periodic task interrupted", "error", err)
		}
	})
	if err != nil {
		return err
	}

	slog.Info("periodic task scheduled")
	return nil
}

// LoadConfiguration simulates reading configuration from an external source.
// It reports whether the load completed.
func (s *Simulator) LoadConfiguration(ctx context.Context) bool {
	slog.Info("loading configuration")
	if err := sleep(ctx, s.ConfigLoadDuration); err != nil {
		slog.Error("error loading configuration", "error", err)
		return false
	}
	slog.Info("configuration loaded successfully")
	return true
}

// ProcessData simulates a bulk processing step. It reports whether the
// step completed.
func (s *Simulator) ProcessData(ctx context.Context) bool {
	slog.Info("starting data processing")
	if err := sleep(ctx, s.DataProcessingDuration); err != nil {
		slog.Error("error during data processing", "error", err)
		return false
	}
	slog.Info("data processed successfully")
	return true
}
