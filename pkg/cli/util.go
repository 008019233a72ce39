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

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/service-b/pkg/header"
	"github.com/NVIDIA/service-b/pkg/utils"
)

// DateResult is printed by the date helpers.
type DateResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// EmailResult is printed by the email helper.
type EmailResult struct {
	Address string `json:"address" yaml:"address"`
	Valid   bool   `json:"valid" yaml:"valid"`
}

// IDResult is printed by the random-id helper.
type IDResult struct {
	ID string `json:"id" yaml:"id"`
}

func utilCmd() *cli.Command {
	return &cli.Command{
		Name:  "util",
		Usage: "Run a data helper and print the result",
		Flags: []cli.Flag{
			newFormatFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:  "transform",
				Usage: "Lower-case keys and trim string values of a JSON or YAML object",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    `Object to transform, e.g. '{"Name":"  Alice  "}'`,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var in map[string]any
					if err := yaml.Unmarshal([]byte(cmd.String("data")), &in); err != nil {
						return fmt.Errorf("failed to parse --data: %w", err)
					}
					cleaned, err := utils.ValidateAndProcessData(in)
					if err != nil {
						return err
					}
					out, err := utils.TransformData(cleaned)
					if err != nil {
						return err
					}
					return writeOutput(ctx, cmd, header.KindUtilResult, out)
				},
			},
			{
				Name:  "format-date",
				Usage: "Re-render a date between layouts",
				Flags: dateFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDate(ctx, cmd, 0)
				},
			},
			{
				Name:  "add-days",
				Usage: "Add days to a date",
				Flags: append(dateFlags(), &cli.IntFlag{
					Name:     "days",
					Required: true,
					Usage:    "Days to add, may be negative",
				}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDate(ctx, cmd, int(cmd.Int("days")))
				},
			},
			{
				Name:  "random-id",
				Usage: "Generate an upper-case alphanumeric identifier",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "length",
						Value: utils.DefaultIDLength,
						Usage: "Identifier length",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := utils.GenerateRandomID(int(cmd.Int("length")))
					if err != nil {
						return err
					}
					return writeOutput(ctx, cmd, header.KindUtilResult, IDResult{ID: id})
				},
			},
			{
				Name:  "email",
				Usage: "Check whether an address looks like an email",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Required: true,
						Usage:    "Address to check",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					addr := cmd.String("address")
					return writeOutput(ctx, cmd, header.KindUtilResult, EmailResult{Address: addr, Valid: utils.IsValidEmail(addr)})
				},
			},
		},
	}
}

func dateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "date",
			Required: true,
			Usage:    "Date in the --in layout, e.g. 2023-09-23",
		},
		&cli.StringFlag{
			Name:  "in",
			Value: utils.DefaultDateInputLayout,
			Usage: "Go time layout of --date",
		},
		&cli.StringFlag{
			Name:  "out",
			Value: utils.DefaultDateOutputLayout,
			Usage: "Go time layout of the result",
		},
	}
}

func runDate(ctx context.Context, cmd *cli.Command, days int) error {
	date := cmd.String("date")
	out, err := utils.AddDaysToDate(date, days, cmd.String("in"), cmd.String("out"))
	if err != nil {
		return err
	}
	return writeOutput(ctx, cmd, header.KindUtilResult, DateResult{Input: date, Output: out})
}
