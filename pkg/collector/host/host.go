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

package host

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/neurotune/neurotune/pkg/collector/file"
)

// Package variables so tests can point the collector at fixture files.
var (
	cpuInfoPath = "/proc/cpuinfo"
	memInfoPath = "/proc/meminfo"
)

// Info describes host CPU and memory capacity.
type Info struct {
	// CPUCount is the number of physical cores.
	CPUCount int `json:"cpuCount" yaml:"cpuCount"`
	// MemoryTotalBytes is the total system memory.
	MemoryTotalBytes uint64 `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`
	// MemoryAvailableBytes is the memory available for new workloads.
	MemoryAvailableBytes uint64 `json:"memoryAvailableBytes" yaml:"memoryAvailableBytes"`
}

// Collector reads host capacity from procfs.
type Collector struct{}

// NewCollector creates a host collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect reads CPU topology and memory capacity. Unlike accelerator probing,
// a failure here is not recoverable: callers treat it as fatal.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cores, err := physicalCoreCount()
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu info: %w", err)
	}

	total, available, err := memoryBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory info: %w", err)
	}

	info := &Info{
		CPUCount:             cores,
		MemoryTotalBytes:     total,
		MemoryAvailableBytes: available,
	}

	slog.Debug("collected host info",
		slog.Int("cpuCount", info.CPUCount),
		slog.Uint64("memoryTotalBytes", info.MemoryTotalBytes),
	)

	return info, nil
}

// physicalCoreCount counts distinct (physical id, core id) pairs in
// /proc/cpuinfo. Hyperthread siblings share a pair, so the result is physical
// cores rather than logical CPUs. Hosts that do not expose topology fields
// (some VMs and containers) fall back to runtime.NumCPU().
func physicalCoreCount() (int, error) {
	lines, err := file.NewParser().GetLines(cpuInfoPath)
	if err != nil {
		return 0, err
	}

	type coreKey struct {
		physicalID string
		coreID     string
	}

	seen := make(map[coreKey]struct{})
	var current coreKey
	var processors int
	var missingTopology bool

	flush := func() {
		if current.physicalID != "" && current.coreID != "" {
			seen[current] = struct{}{}
			return
		}
		missingTopology = true
	}

	for _, line := range lines {
		key, value := splitCPUInfoLine(line)
		switch key {
		case "processor":
			if processors > 0 {
				flush()
			}
			processors++
			current = coreKey{}
		case "physical id":
			current.physicalID = value
		case "core id":
			current.coreID = value
		}
	}
	if processors > 0 {
		flush()
	}

	if processors == 0 {
		return 0, fmt.Errorf("no processor entries in %s", cpuInfoPath)
	}

	if missingTopology || len(seen) == 0 {
		fallback := runtime.NumCPU()
		slog.Debug("cpu topology fields absent, falling back to logical count",
			slog.Int("count", fallback),
		)
		return fallback, nil
	}

	return len(seen), nil
}

func splitCPUInfoLine(line string) (key, value string) {
	parts := strings.SplitN(line, ":", 2)
	key = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		value = strings.TrimSpace(parts[1])
	}
	return key, value
}

// memoryBytes reads MemTotal and MemAvailable from /proc/meminfo.
func memoryBytes() (total, available uint64, err error) {
	kv, err := file.NewParser(file.WithKVDelimiter(":")).GetMap(memInfoPath)
	if err != nil {
		return 0, 0, err
	}

	total, err = parseMemInfoValue(kv, "MemTotal")
	if err != nil {
		return 0, 0, err
	}

	// Older kernels lack MemAvailable; treat it as optional.
	available, err = parseMemInfoValue(kv, "MemAvailable")
	if err != nil {
		slog.Debug("MemAvailable not present, reporting zero", "error", err)
		available = 0
	}

	return total, available, nil
}

// parseMemInfoValue converts a meminfo entry like "32795852 kB" to bytes.
func parseMemInfoValue(kv map[string]string, key string) (uint64, error) {
	raw, ok := kv[key]
	if !ok {
		return 0, fmt.Errorf("%s not found in %s", key, memInfoPath)
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s entry is empty", key)
	}

	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s value %q: %w", key, fields[0], err)
	}

	// meminfo values carry a kB suffix; bare values are already bytes.
	if len(fields) > 1 && strings.EqualFold(fields[1], "kb") {
		value *= 1024
	}

	return value, nil
}
