// Copyright (c) 2025, Neurotune Authors.  All rights reserved.
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

// Package neuron probes AWS Neuron accelerator inventory via neuron-ls.
//
// # Collected Data
//
// One Device per accelerator:
//   - ID: device index
//   - CoreCount: NeuronCores on the device
//   - MemoryTotalBytes, MemoryUsedBytes: device memory
//   - UtilizationPercent: NeuronCore utilization
//
// # neuron-ls Dependency
//
// The collector requires neuron-ls from the Neuron SDK tools package to be in
// the system PATH. The JSON form (neuron-ls --json) is preferred; tool
// versions that predate --json are handled by parsing the human-readable
// table. Both spellings of the JSON core count (neuron_cores, nc_count) and
// memory (memory_size, memory) fields are accepted.
//
// # Error Semantics
//
// A missing tool, failed exec, or unrecognized output returns an error.
// Callers treat that as a degraded probe and continue with an empty device
// list: a host without Neuron devices is a supported configuration, not a
// failure. A successful probe of a device-less host returns an empty slice
// and no error.
package neuron
