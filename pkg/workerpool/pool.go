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
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NVIDIA/service-b/pkg/errors"
)

const (
	// DefaultQueueSize bounds the number of tasks waiting for a worker.
	DefaultQueueSize = 100
)

// Task is a unit of work run by a pool worker. The context is cancelled
// when the pool is forced to terminate.
type Task func(ctx context.Context)

type workerNameKey struct{}

// WorkerName returns the name of the worker running the task, or an empty
// string when ctx does not come from a pool.
func WorkerName(ctx context.Context) string {
	name, _ := ctx.Value(workerNameKey{}).(string)
	return name
}

var poolSeq atomic.Int64

// Option configures a Pool.
type Option func(*Pool)

// WithName sets the pool name used for worker names and metric labels.
func WithName(name string) Option {
	return func(p *Pool) {
		if name != "" {
			p.name = name
		}
	}
}

// WithQueueSize sets the capacity of the task queue.
func WithQueueSize(size int) Option {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// Pool runs submitted tasks on a fixed number of goroutines.
type Pool struct {
	name      string
	size      int
	queueSize int

	tasks  chan Task
	closed chan struct{}
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	shutdown bool
	wg       sync.WaitGroup

	submitted atomic.Int64
	completed atomic.Int64
	dropped   atomic.Int64
}

// New creates a pool with size workers and starts them. A size below one
// is treated as one.
func New(size int, opts ...Option) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		name:      fmt.Sprintf("pool-%d", poolSeq.Add(1)),
		size:      size,
		queueSize: DefaultQueueSize,
		closed:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.tasks = make(chan Task, p.queueSize)
	p.ctx, p.cancel = context.WithCancel(context.Background())

	for i := 1; i <= p.size; i++ {
		p.wg.Add(1)
		go p.worker(fmt.Sprintf("%s-thread-%d", p.name, i))
	}

	slog.Debug("worker pool started", "pool", p.name, "workers", p.size, "queue", p.queueSize)
	return p
}

func (p *Pool) worker(name string) {
	defer p.wg.Done()

	ctx := context.WithValue(p.ctx, workerNameKey{}, name)
	for task := range p.tasks {
		if ctx.Err() != nil {
			p.dropped.Add(1)
			tasksDropped.WithLabelValues(p.name).Inc()
			continue
		}
		p.run(ctx, task)
	}
}

func (p *Pool) run(ctx context.Context, task Task) {
	busyWorkers.WithLabelValues(p.name).Inc()
	defer func() {
		busyWorkers.WithLabelValues(p.name).Dec()
		if r := recover(); r != nil {
			taskPanics.WithLabelValues(p.name).Inc()
			slog.Error("panic recovered in pool task",
				"pool", p.name,
				"worker", WorkerName(ctx),
				"error", fmt.Sprintf("%v", r),
			)
		}
		p.completed.Add(1)
		tasksCompleted.WithLabelValues(p.name).Inc()
	}()

	task(ctx)
}

// Submit queues a task. It fails once the pool is shut down or when the
// queue is full.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "task is nil")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.shutdown {
		return errors.NewWithContext(errors.ErrCodeUnavailable,
			"worker pool is shut down", map[string]any{"pool": p.name})
	}

	select {
	case p.tasks <- task:
		p.submitted.Add(1)
		tasksSubmitted.WithLabelValues(p.name).Inc()
		return nil
	default:
		return errors.NewWithContext(errors.ErrCodeUnavailable,
			"worker pool queue is full", map[string]any{
				"pool":  p.name,
				"queue": p.queueSize,
			})
	}
}

// Schedule submits task immediately and then once per interval until ctx
// is cancelled, the pool shuts down, or a submission fails. A run never
// overlaps the previous one: ticks that fire while it is still in flight
// are skipped.
func (p *Pool) Schedule(ctx context.Context, interval time.Duration, task Task) error {
	if interval <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"schedule interval must be positive", map[string]any{"interval": interval.String()})
	}

	var inFlight atomic.Bool
	run := func(ctx context.Context) {
		defer inFlight.Store(false)
		task(ctx)
	}
	submit := func() error {
		if !inFlight.CompareAndSwap(false, true) {
			scheduleSkips.WithLabelValues(p.name).Inc()
			slog.Debug("periodic run still in flight, skipping tick", "pool", p.name)
			return nil
		}
		if err := p.Submit(run); err != nil {
			inFlight.Store(false)
			return err
		}
		return nil
	}

	if err := submit(); err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := submit(); err != nil {
					slog.Debug("periodic submission stopped", "pool", p.name, "error", err)
					return
				}
			case <-ctx.Done():
				return
			case <-p.closed:
				return
			}
		}
	}()

	return nil
}

// Shutdown stops accepting tasks and waits up to grace for queued and
// running tasks to finish. When the grace period elapses the task context
// is cancelled and remaining queued tasks are dropped; the return value
// reports whether that forced termination happened. Subsequent calls
// return false immediately.
func (p *Pool) Shutdown(grace time.Duration) bool {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return false
	}
	p.shutdown = true
	close(p.closed)
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-done:
		p.cancel()
		slog.Debug("worker pool terminated", "pool", p.name, "completed", p.completed.Load())
		return false
	case <-timer.C:
		forcedShutdowns.WithLabelValues(p.name).Inc()
		p.cancel()
		slog.Debug("worker pool termination forced", "pool", p.name, "grace", grace.String())
		return true
	}
}

// Wait blocks until every worker has exited or ctx is done.
func (p *Pool) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(errors.ErrCodeTimeout, "waiting for workers", ctx.Err())
	}
}

// Name returns the pool name.
func (p *Pool) Name() string { return p.name }

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// IsRunning reports whether the pool still accepts tasks.
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.shutdown
}

// Submitted returns the number of accepted tasks.
func (p *Pool) Submitted() int64 { return p.submitted.Load() }

// Completed returns the number of tasks that returned, including those
// that panicked.
func (p *Pool) Completed() int64 { return p.completed.Load() }

// Dropped returns the number of queued tasks discarded by a forced shutdown.
func (p *Pool) Dropped() int64 { return p.dropped.Load() }
