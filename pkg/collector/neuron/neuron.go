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

package neuron

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// neuronLSCommand is a variable so tests can point at a fake binary.
var neuronLSCommand = "neuron-ls"

// Device describes a single Neuron accelerator device.
type Device struct {
	// ID is the device index as reported by neuron-ls.
	ID int `json:"id" yaml:"id"`
	// CoreCount is the number of NeuronCores on the device.
	CoreCount int `json:"coreCount" yaml:"coreCount"`
	// MemoryTotalBytes is the device memory capacity.
	MemoryTotalBytes uint64 `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`
	// MemoryUsedBytes is the device memory currently in use.
	MemoryUsedBytes uint64 `json:"memoryUsedBytes" yaml:"memoryUsedBytes"`
	// UtilizationPercent is the NeuronCore utilization (0-100).
	UtilizationPercent float64 `json:"utilizationPercent" yaml:"utilizationPercent"`
}

// Collector probes Neuron device inventory via neuron-ls.
type Collector struct{}

// NewCollector creates a neuron collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect runs neuron-ls and parses its output, preferring the JSON form and
// falling back to the human-readable table. Any failure (tool absent, exec
// error, unparseable output) returns an error; callers degrade to an empty
// device list rather than aborting.
func (c *Collector) Collect(ctx context.Context) ([]Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := exec.LookPath(neuronLSCommand)
	if err != nil {
		return nil, fmt.Errorf("neuron-ls not found in PATH: %w", err)
	}

	// JSON form first. Older tool versions reject --json, so an exec or
	// parse failure here drops down to table form rather than reporting.
	out, jsonErr := exec.CommandContext(ctx, path, "--json").Output()
	if jsonErr == nil {
		devices, perr := parseJSONOutput(out)
		if perr == nil {
			slog.Debug("parsed neuron-ls json output", slog.Int("devices", len(devices)))
			return devices, nil
		}
		slog.Debug("neuron-ls json output unparseable, trying table form", "error", perr)
	}

	out, err = exec.CommandContext(ctx, path).Output()
	if err != nil {
		return nil, fmt.Errorf("failed to execute neuron-ls: %w", err)
	}

	devices, err := parseTableOutput(out)
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed neuron-ls table output", slog.Int("devices", len(devices)))
	return devices, nil
}

// lsDevice mirrors one entry of neuron-ls --json. Field names vary across
// tool versions, so core count and memory each accept two spellings.
type lsDevice struct {
	NeuronDevice  *int    `json:"neuron_device"`
	NeuronCores   int     `json:"neuron_cores"`
	NCCount       int     `json:"nc_count"`
	MemorySize    uint64  `json:"memory_size"`
	Memory        uint64  `json:"memory"`
	MemoryUsed    uint64  `json:"memory_used"`
	NCUtilization float64 `json:"nc_utilization"`
}

type lsOutput struct {
	NeuronDevices []lsDevice `json:"neuron_devices"`
}

func parseJSONOutput(data []byte) ([]Device, error) {
	var out lsOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse neuron-ls json output: %w", err)
	}

	devices := make([]Device, 0, len(out.NeuronDevices))
	for i, d := range out.NeuronDevices {
		id := i
		if d.NeuronDevice != nil {
			id = *d.NeuronDevice
		}

		cores := d.NeuronCores
		if cores == 0 {
			cores = d.NCCount
		}

		memory := d.MemorySize
		if memory == 0 {
			memory = d.Memory
		}

		devices = append(devices, Device{
			ID:                 id,
			CoreCount:          cores,
			MemoryTotalBytes:   memory,
			MemoryUsedBytes:    d.MemoryUsed,
			UtilizationPercent: d.NCUtilization,
		})
	}

	return devices, nil
}

// parseTableOutput parses the human-readable neuron-ls table:
//
//	+--------+--------+--------+---------------+
//	| NEURON | NEURON | NEURON | PCI           |
//	| DEVICE | CORES  | MEMORY | BDF           |
//	+--------+--------+--------+---------------+
//	| 0      | 2      | 32 GB  | 0000:00:1e.0  |
//	+--------+--------+--------+---------------+
//
// A data row is a '|' delimited row whose first cell is an integer.
func parseTableOutput(data []byte) ([]Device, error) {
	var devices []Device
	sawTable := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}
		sawTable = true

		cells := splitTableRow(line)
		if len(cells) < 3 {
			continue
		}

		id, err := strconv.Atoi(cells[0])
		if err != nil {
			// Header or separator row.
			continue
		}

		cores, err := strconv.Atoi(cells[1])
		if err != nil {
			continue
		}

		memory, err := parseMemorySize(cells[2])
		if err != nil {
			continue
		}

		devices = append(devices, Device{
			ID:               id,
			CoreCount:        cores,
			MemoryTotalBytes: memory,
		})
	}

	if !sawTable {
		return nil, fmt.Errorf("unrecognized neuron-ls output")
	}

	if devices == nil {
		devices = []Device{}
	}
	return devices, nil
}

func splitTableRow(line string) []string {
	raw := strings.Split(line, "|")
	cells := make([]string, 0, len(raw))
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

// parseMemorySize converts values like "32 GB" or "16384 MB" to bytes.
// Unit multipliers are binary, matching how neuron-ls reports capacity.
func parseMemorySize(s string) (uint64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty memory size")
	}

	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse memory size %q: %w", s, err)
	}

	if len(fields) == 1 {
		return value, nil
	}

	switch strings.ToUpper(fields[1]) {
	case "B":
		return value, nil
	case "KB", "KIB":
		return value << 10, nil
	case "MB", "MIB":
		return value << 20, nil
	case "GB", "GIB":
		return value << 30, nil
	case "TB", "TIB":
		return value << 40, nil
	default:
		return 0, fmt.Errorf("unknown memory unit %q", fields[1])
	}
}
