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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Simulations
		{"TaskDuration", TaskDuration, 1 * time.Second, 5 * time.Second},
		{"PeriodicTaskInterval", PeriodicTaskInterval, 1 * time.Second, 30 * time.Second},
		{"ConfigLoadDuration", ConfigLoadDuration, 100 * time.Millisecond, 5 * time.Second},
		{"NotificationDuration", NotificationDuration, 100 * time.Millisecond, 5 * time.Second},
		{"RecordProcessingDuration", RecordProcessingDuration, 100 * time.Millisecond, 5 * time.Second},
		{"DataProcessingDuration", DataProcessingDuration, 1 * time.Second, 10 * time.Second},

		// Pool
		{"PoolShutdownGrace", PoolShutdownGrace, 1 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 10 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 120 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 60 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s = %v, below minimum %v", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s = %v, above maximum %v", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestPoolShutdownGraceExceedsTaskDuration(t *testing.T) {
	// Startup tasks must be able to finish inside the grace period.
	if PoolShutdownGrace <= TaskDuration {
		t.Errorf("PoolShutdownGrace (%v) should exceed TaskDuration (%v)",
			PoolShutdownGrace, TaskDuration)
	}
}

func TestWorkerPoolSize(t *testing.T) {
	if WorkerPoolSize != 10 {
		t.Errorf("WorkerPoolSize = %d, want 10", WorkerPoolSize)
	}
	if TaskMaxRetries != 3 {
		t.Errorf("TaskMaxRetries = %d, want 3", TaskMaxRetries)
	}
}
