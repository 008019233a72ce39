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

	"github.com/NVIDIA/service-b/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the Service B HTTP server",
		Description: `Start the worker pool bootstrap and serve the /serviceb endpoints
until interrupted. On shutdown the HTTP server drains first, then the
worker pool gets its grace period before remaining tasks are cancelled.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (default: 8080 or PORT)",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message reported by /serviceb/info (overrides serviceb.message)",
			},
			&cli.BoolFlag{
				Name:  "periodic",
				Usage: "Schedule the periodic simulation task on the worker pool",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Options{
				ConfigPath: cmd.String("config"),
				Message:    cmd.String("message"),
				Address:    cmd.String("address"),
				Port:       int(cmd.Int("port")),
				LogLevel:   cmd.String("log-level"),
				Periodic:   cmd.Bool("periodic"),
			})
		},
	}
}
