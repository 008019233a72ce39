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
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/header"
	"github.com/NVIDIA/service-b/pkg/tasks"
	"github.com/NVIDIA/service-b/pkg/workerpool"
)

const defaultNotificationMessage = "Hello from ServiceB"

// StepResult reports whether a single sleep-and-log simulation completed.
type StepResult struct {
	Task      string `json:"task" yaml:"task"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// NotificationResult reports the outcome of the notify simulation.
type NotificationResult struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Message string `json:"message" yaml:"message"`
	Sent    bool   `json:"sent" yaml:"sent"`
}

// PeriodicResult reports the pool counters after a periodic run.
type PeriodicResult struct {
	Submitted int64 `json:"submitted" yaml:"submitted"`
	Completed int64 `json:"completed" yaml:"completed"`
	Forced    bool  `json:"forced" yaml:"forced"`
}

func taskCmd() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Run one background-task simulation in the foreground",
		Description: `Each subcommand runs a single simulation to completion (or until
interrupted) and prints its result. Durations default to the values the
service uses and can be shortened for local experiments.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "task-duration",
				Value: defaults.TaskDuration,
				Usage: "Sleep of one simulated task",
			},
			&cli.DurationFlag{
				Name:  "step-duration",
				Usage: "Sleep of each config/notify/record/process step (default: per-step values)",
			},
			&cli.IntFlag{
				Name:  "retries",
				Value: defaults.TaskMaxRetries,
				Usage: "Maximum attempts of the retry simulation",
			},
			newFormatFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:  "retry",
				Usage: "Run a task with up to --retries attempts",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return writeOutput(ctx, cmd, header.KindTaskResult, newSimulator(cmd).ExecuteWithRetry(ctx))
				},
			},
			periodicCmd(),
			{
				Name:  "business",
				Usage: "Fetch, process and save the sample records",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return writeOutput(ctx, cmd, header.KindTaskResult, newSimulator(cmd).RunBusinessLogic(ctx))
				},
			},
			{
				Name:  "notify",
				Usage: "Send a simulated notification",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "message",
						Value: defaultNotificationMessage,
						Usage: "Notification text",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					msg := cmd.String("message")
					id := newSimulator(cmd).SendNotification(ctx, msg)
					return writeOutput(ctx, cmd, header.KindTaskResult, NotificationResult{ID: id, Message: msg, Sent: id != ""})
				},
			},
			{
				Name:  "process",
				Usage: "Run the bulk data processing step",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ok := newSimulator(cmd).ProcessData(ctx)
					return writeOutput(ctx, cmd, header.KindTaskResult, StepResult{Task: "process", Completed: ok})
				},
			},
			{
				Name:  "load-config",
				Usage: "Run the configuration load step",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ok := newSimulator(cmd).LoadConfiguration(ctx)
					return writeOutput(ctx, cmd, header.KindTaskResult, StepResult{Task: "load-config", Completed: ok})
				},
			},
		},
	}
}

func periodicCmd() *cli.Command {
	return &cli.Command{
		Name:  "periodic",
		Usage: "Run the periodic task on a one-worker pool for --duration",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Value: defaults.PeriodicTaskInterval,
				Usage: "Rate of the periodic task",
			},
			&cli.DurationFlag{
				Name:  "duration",
				Value: 3 * defaults.PeriodicTaskInterval,
				Usage: "How long to keep scheduling",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sim := newSimulator(cmd, tasks.WithPeriodicInterval(cmd.Duration("interval")))
			pool := workerpool.New(1, workerpool.WithName("periodic"))

			runCtx, cancel := context.WithTimeout(ctx, cmd.Duration("duration"))
			defer cancel()

			if err := sim.SchedulePeriodic(runCtx, pool); err != nil {
				pool.Shutdown(0)
				return err
			}
			<-runCtx.Done()

			forced := pool.Shutdown(defaults.PoolShutdownGrace)
			return writeOutput(ctx, cmd, header.KindTaskResult, PeriodicResult{
				Submitted: pool.Submitted(),
				Completed: pool.Completed(),
				Forced:    forced,
			})
		},
	}
}

// newSimulator applies the shared task flags, then extra.
func newSimulator(cmd *cli.Command, extra ...tasks.Option) *tasks.Simulator {
	opts := []tasks.Option{
		tasks.WithTaskDuration(cmd.Duration("task-duration")),
		tasks.WithMaxRetries(int(cmd.Int("retries"))),
	}
	if step := cmd.Duration("step-duration"); step > 0 {
		opts = append(opts, tasks.WithStepDuration(step))
	}
	return tasks.NewSimulator(append(opts, extra...)...)
}
