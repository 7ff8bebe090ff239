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

package snapshotter

import (
	"context"

	"github.com/neurotune/neurotune/pkg/header"
)

// FullAPIVersion is the fully qualified API version stamped on every
// serialized snapshot artifact.
const FullAPIVersion = "neurotune.dev/v1alpha1"

// Snapshotter defines the interface for collecting resource snapshots.
// Implementations probe the host and any attached accelerators and serialize
// the result for analysis or parameter recommendation.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Capturer produces typed resource snapshots without serializing them.
// Consumers that need the snapshot data in memory (the advisor, the monitor)
// use this instead of Snapshotter.
type Capturer interface {
	Capture(ctx context.Context) (*Snapshot, error)
}

// NewSnapshot creates a new Snapshot instance with initialized slices.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Accelerators: make([]Accelerator, 0),
		Notes:        make([]string, 0),
	}
}

// Snapshot represents the compute resources of a host at a point in time:
// physical CPU cores, system memory, and any Neuron accelerator devices.
// It is the input to parameter recommendation and the payload of the
// snapshot command.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// CPUCount is the number of physical CPU cores on the host.
	CPUCount int `json:"cpuCount" yaml:"cpuCount"`

	// HostMemoryTotalBytes is the total system memory in bytes.
	HostMemoryTotalBytes uint64 `json:"hostMemoryTotalBytes" yaml:"hostMemoryTotalBytes"`

	// HostMemoryAvailableBytes is the memory available for new workloads in
	// bytes. Zero when the kernel does not report MemAvailable.
	HostMemoryAvailableBytes uint64 `json:"hostMemoryAvailableBytes" yaml:"hostMemoryAvailableBytes"`

	// Accelerators contains one entry per detected Neuron device. Empty when
	// the host has no devices or the probe tooling is unavailable.
	Accelerators []Accelerator `json:"accelerators" yaml:"accelerators"`

	// Notes records degradations encountered during collection, such as an
	// accelerator probe that could not run.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Accelerator describes a single Neuron accelerator device.
type Accelerator struct {
	// ID is the device index as reported by the probe tool.
	ID int `json:"id" yaml:"id"`

	// CoreCount is the number of NeuronCores on the device.
	CoreCount int `json:"coreCount" yaml:"coreCount"`

	// MemoryTotalBytes is the device memory capacity in bytes.
	MemoryTotalBytes uint64 `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`

	// MemoryUsedBytes is the device memory currently in use in bytes.
	MemoryUsedBytes uint64 `json:"memoryUsedBytes" yaml:"memoryUsedBytes"`

	// UtilizationPercent is the NeuronCore utilization, 0-100.
	UtilizationPercent float64 `json:"utilizationPercent" yaml:"utilizationPercent"`
}

// MemoryAvailableBytes returns the unused device memory. Returns 0 when the
// reported usage exceeds the reported capacity.
func (a Accelerator) MemoryAvailableBytes() uint64 {
	if a.MemoryUsedBytes > a.MemoryTotalBytes {
		return 0
	}
	return a.MemoryTotalBytes - a.MemoryUsedBytes
}

// HasAccelerators reports whether the snapshot contains at least one
// accelerator device.
func (s *Snapshot) HasAccelerators() bool {
	return len(s.Accelerators) > 0
}

// TotalCoreCount returns the NeuronCore count summed across all accelerators.
func (s *Snapshot) TotalCoreCount() int {
	total := 0
	for _, a := range s.Accelerators {
		total += a.CoreCount
	}
	return total
}

// TotalAcceleratorMemoryBytes returns the device memory capacity summed
// across all accelerators.
func (s *Snapshot) TotalAcceleratorMemoryBytes() uint64 {
	var total uint64
	for _, a := range s.Accelerators {
		total += a.MemoryTotalBytes
	}
	return total
}

// TotalAcceleratorMemoryGiB returns the total accelerator memory in GiB.
func (s *Snapshot) TotalAcceleratorMemoryGiB() float64 {
	return float64(s.TotalAcceleratorMemoryBytes()) / (1 << 30)
}

// AcceleratorMemoryUsageFraction returns used/total device memory across all
// accelerators as a fraction in [0, 1]. Returns 0 when no device memory is
// present, so callers never divide by zero.
func (s *Snapshot) AcceleratorMemoryUsageFraction() float64 {
	total := s.TotalAcceleratorMemoryBytes()
	if total == 0 {
		return 0
	}
	var used uint64
	for _, a := range s.Accelerators {
		used += a.MemoryUsedBytes
	}
	return float64(used) / float64(total)
}
