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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/service-b/pkg/header"
	"github.com/NVIDIA/service-b/pkg/serializer"
)

// Result is the document printed by the task and util commands.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec any `json:"spec" yaml:"spec"`
}

// newFormatFlag returns the --format flag. Flags hold parse state, so
// each command gets its own instance.
func newFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// writeOutput wraps data in a Result of the given kind and serializes it
// to the root command's writer in the format selected by --format.
func writeOutput(ctx context.Context, cmd *cli.Command, kind header.Kind, data any) error {
	f, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	res := Result{Spec: data}
	res.Init(kind, header.APIVersion, version)
	res.SetMetadata("command", cmd.FullName())

	return serializer.NewWriter(f, cmd.Root().Writer).Serialize(ctx, res)
}
