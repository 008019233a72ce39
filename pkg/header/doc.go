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
// Package header provides the envelope written around Service B CLI results.
//
// A Header follows the Kubernetes resource convention of kind, apiVersion
// and free-form string metadata. Embed it inline so the fields sit at the
// top level of the document:
//
//	type Result struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Spec any      `json:"spec" yaml:"spec"`
//	}
//
//	r := Result{Spec: data}
//	r.Init(header.KindTaskResult, header.APIVersion, version)
//
// Serialized as YAML:
//
//	kind: TaskResult
//	apiVersion: serviceb.nvidia.com/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: 1.0.0
//	spec:
//	  attempts: 1
//	  succeeded: true
package header
