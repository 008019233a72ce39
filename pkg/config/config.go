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

// Package config loads the Service B application configuration.
//
// Values are resolved, highest precedence first, from environment variables
// (SERVICEB_MESSAGE for serviceb.message), an optional YAML file, and the
// built-in defaults.
//
// Example serviceb.yaml:
//
//	serviceb:
//	  message: Hello from B
//	  heavy-task-iterations: 1000000
package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/NVIDIA/service-b/pkg/defaults"
	"github.com/NVIDIA/service-b/pkg/errors"
)

const (
	// KeyMessage is the configuration key reflected by the info endpoint.
	KeyMessage = "serviceb.message"

	// KeyHeavyTaskIterations is the loop count of the heavy task endpoint.
	KeyHeavyTaskIterations = "serviceb.heavy-task-iterations"

	// DefaultMessage is used when serviceb.message is not set.
	DefaultMessage = "ServiceB is running"

	configName = "serviceb"
	configType = "yaml"
)

// Config holds the resolved service configuration.
type Config struct {
	Message             string
	HeavyTaskIterations int64
}

// Load resolves the configuration. When path is empty, a serviceb.yaml in
// the working directory is used if present; when path is set, the file must
// exist and parse.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyMessage, DefaultMessage)
	v.SetDefault(KeyHeavyTaskIterations, defaults.HeavyTaskIterations)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to read config file", err, map[string]any{"path": path})
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
					"failed to read config file", err)
			}
		}
	}

	cfg := &Config{
		Message:             v.GetString(KeyMessage),
		HeavyTaskIterations: v.GetInt64(KeyHeavyTaskIterations),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	if c.HeavyTaskIterations < 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s must not be negative", KeyHeavyTaskIterations),
			map[string]any{"value": c.HeavyTaskIterations})
	}
	return nil
}
