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
// Package cli implements the serviceb command line.
//
// # Commands
//
// serve - Run the HTTP service:
//
//	serviceb serve --port 8080 --message "Hello from B"
//
// Starts the worker pool bootstrap and serves /serviceb/*, /health, /ready
// and /metrics until SIGINT or SIGTERM.
//
// task - Run one simulation in the foreground:
//
//	serviceb task retry --task-duration 500ms
//	serviceb task periodic --interval 1s --duration 5s
//	serviceb task business --step-duration 100ms --format yaml
//	serviceb task notify --message "build finished"
//	serviceb task process
//	serviceb task load-config
//
// util - Run a data helper:
//
//	serviceb util transform --data '{"Name":"  Alice  ","Age":null}'
//	serviceb util format-date --date 2023-09-23
//	serviceb util add-days --date 2023-09-23 --days 7
//	serviceb util random-id --length 12
//	serviceb util email --address someone@example.com
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: info, env LOG_LEVEL)
//	--config, -c   serviceb.yaml path (env SERVICEB_CONFIG)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// task and util print their result as JSON (default) or YAML, selected
// with --format.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or execution failure
package cli
