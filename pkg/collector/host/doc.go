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

// Package host collects CPU and memory capacity from procfs.
//
// # Collected Data
//
//   - CPUCount: physical cores, counted as distinct (physical id, core id)
//     pairs from /proc/cpuinfo. Hosts without topology fields fall back to the
//     logical CPU count.
//   - MemoryTotalBytes: MemTotal from /proc/meminfo, converted to bytes.
//   - MemoryAvailableBytes: MemAvailable from /proc/meminfo; zero on kernels
//     that predate the field.
//
// # Error Semantics
//
// Host capacity feeds every sizing decision downstream, so a read failure
// here is fatal: Collect returns an error and callers are expected to abort
// rather than continue with guessed values. This is deliberately stricter
// than the accelerator collector, which degrades to an empty device list.
package host
