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
package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/service-b/pkg/app"
	"github.com/NVIDIA/service-b/pkg/config"
	"github.com/NVIDIA/service-b/pkg/logging"
	"github.com/NVIDIA/service-b/pkg/server"
	"github.com/NVIDIA/service-b/pkg/serviceb"
	"golang.org/x/sync/errgroup"
)

const (
	name           = "serviceb"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/service-b/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options adjusts Serve. The zero value serves with defaults.
type Options struct {
	// ConfigPath is an optional YAML file; see config.Load.
	ConfigPath string

	// Message overrides serviceb.message when set.
	Message string

	// Address and Port override the server listen address. A zero Port
	// keeps the default (or PORT from the environment).
	Address string
	Port    int

	// LogLevel overrides LOG_LEVEL when set.
	LogLevel string

	// Periodic schedules the periodic simulation task on the worker pool.
	Periodic bool

	appOptions []app.Option
}

// Serve starts Service B and blocks until ctx is cancelled, a termination
// signal arrives or the server fails. The worker pool is shut down on
// every exit path.
func Serve(ctx context.Context, opts Options) error {
	level := opts.LogLevel
	if level == "" {
		logging.SetDefaultStructuredLogger(name, version)
	} else {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Message != "" {
		cfg.Message = opts.Message
	}

	svc := app.New(opts.appOptions...)
	if err := svc.Init(ctx); err != nil {
		svc.HandleError(err)
		return fmt.Errorf("failed to initialize service: %w", err)
	}

	s := newServer(opts, cfg, svc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(gctx)
	})
	if opts.Periodic {
		g.Go(func() error {
			return svc.SchedulePeriodicTask(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		svc.HandleError(err)
		return err
	}

	svc.Shutdown()
	return nil
}

// newServer builds the HTTP server with the controller routes and the
// service health check behind /ready.
func newServer(opts Options, cfg *config.Config, svc *app.Service) *server.Server {
	ctrl := serviceb.New(
		serviceb.WithMessage(cfg.Message),
		serviceb.WithHeavyTaskIterations(cfg.HeavyTaskIterations),
	)

	sc := server.NewConfig()
	if opts.Address != "" {
		sc.Address = opts.Address
	}
	if opts.Port > 0 {
		sc.Port = opts.Port
	}

	return server.New(
		server.WithConfig(sc),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(ctrl.Routes()),
		server.WithReadinessCheck(svc.HealthCheck),
	)
}
