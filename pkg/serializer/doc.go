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

// Package serializer writes Service B data for HTTP clients and the CLI.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented on the CLI
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, for terminal output
//   - gopkg.in/yaml.v3 package
//
// # HTTP Responses
//
// RespondJSON and RespondText buffer the body before writing headers so an
// encoding failure never produces a partial response:
//
//	serializer.RespondText(w, http.StatusOK, "ServiceB is healthy: "+now)
//	serializer.RespondJSON(w, http.StatusOK, []string{"ServiceA", "ServiceC", "ServiceD"})
//
// # CLI Output
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
package serializer
