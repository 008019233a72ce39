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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/errors"
	"github.com/NVIDIA/service-b/pkg/workerpool"
)

func fastSimulator(opts ...Option) *Simulator {
	base := []Option{
		WithTaskDuration(5 * time.Millisecond),
		WithPeriodicInterval(10 * time.Millisecond),
		WithStepDuration(time.Millisecond),
	}
	return NewSimulator(append(base, opts...)...)
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestNewSimulatorDefaults(t *testing.T) {
	s := NewSimulator()

	assert.Equal(t, defaults.TaskDuration, s.TaskDuration)
	assert.Equal(t, defaults.PeriodicTaskInterval, s.PeriodicInterval)
	assert.Equal(t, defaults.TaskMaxRetries, s.MaxRetries)
	assert.Equal(t, defaults.ConfigLoadDuration, s.ConfigLoadDuration)
	assert.Equal(t, defaults.NotificationDuration, s.NotificationDuration)
	assert.Equal(t, defaults.RecordProcessingDuration, s.RecordDuration)
	assert.Equal(t, defaults.DataProcessingDuration, s.DataProcessingDuration)
}

func TestPerformTask(t *testing.T) {
	s := fastSimulator()

	require.NoError(t, s.PerformTask(context.Background()))

	err := s.PerformTask(cancelledContext())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInterrupted, errors.CodeOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackgroundTaskSwallowsInterruption(t *testing.T) {
	s := fastSimulator()

	assert.NotPanics(t, func() {
		s.BackgroundTask(cancelledContext())
		s.BackgroundTask(context.Background())
	})
}

func TestExecuteWithRetry(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want RetryResult
	}{
		{
			name: "succeeds on first attempt",
			ctx:  context.Background(),
			want: RetryResult{Attempts: 1, Succeeded: true},
		},
		{
			name: "interrupted every attempt",
			ctx:  cancelledContext(),
			want: RetryResult{Attempts: 3, Succeeded: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fastSimulator().ExecuteWithRetry(tt.ctx)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteWithRetryCustomBound(t *testing.T) {
	got := fastSimulator(WithMaxRetries(5)).ExecuteWithRetry(cancelledContext())
	assert.Equal(t, RetryResult{Attempts: 5}, got)
}

func TestExecuteWithRetryCancelledFailsFast(t *testing.T) {
	start := time.Now()
	got := NewSimulator().ExecuteWithRetry(cancelledContext())

	assert.Equal(t, RetryResult{Attempts: defaults.TaskMaxRetries}, got)
	assert.Less(t, time.Since(start), defaults.TaskDuration)
}

func TestSchedulePeriodic(t *testing.T) {
	s := fastSimulator()
	pool := workerpool.New(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.SchedulePeriodic(ctx, pool))
	assert.Eventually(t, func() bool { return pool.Completed() >= 2 },
		2*time.Second, 5*time.Millisecond)

	pool.Shutdown(time.Second)
}

func TestSchedulePeriodicOnStoppedPool(t *testing.T) {
	pool := workerpool.New(1)
	pool.Shutdown(time.Second)

	err := fastSimulator().SchedulePeriodic(context.Background(), pool)
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
}

func TestSleepSimulations(t *testing.T) {
	s := fastSimulator()

	assert.True(t, s.LoadConfiguration(context.Background()))
	assert.False(t, s.LoadConfiguration(cancelledContext()))

	assert.True(t, s.ProcessData(context.Background()))
	assert.False(t, s.ProcessData(cancelledContext()))
}

func TestRunBusinessLogic(t *testing.T) {
	res := fastSimulator().RunBusinessLogic(context.Background())

	assert.Equal(t, []string{"Data1", "Data2", "Data3"}, res.Fetched)
	assert.Equal(t, []string{"Data1_processed", "Data2_processed", "Data3_processed"}, res.Processed)
	assert.Equal(t, 3, res.Saved)
}

func TestRunBusinessLogicNoRecords(t *testing.T) {
	s := fastSimulator(WithFetcher(func() []string { return nil }))

	res := s.RunBusinessLogic(context.Background())
	assert.Empty(t, res.Fetched)
	assert.Empty(t, res.Processed)
	assert.Zero(t, res.Saved)
}

func TestRunBusinessLogicInterrupted(t *testing.T) {
	res := fastSimulator().RunBusinessLogic(cancelledContext())

	assert.Len(t, res.Fetched, 3)
	assert.Empty(t, res.Processed)
	assert.Zero(t, res.Saved)
}

func TestSendNotification(t *testing.T) {
	s := fastSimulator()

	id := s.SendNotification(context.Background(), "disk almost full")
	assert.Regexp(t, `^[A-Z0-9]{8}$`, id)

	assert.Empty(t, s.SendNotification(cancelledContext(), "dropped"))
}
