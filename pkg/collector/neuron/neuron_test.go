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
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestParseJSONOutput(t *testing.T) {
	t.Run("standard fields", func(t *testing.T) {
		data := []byte(`{
			"neuron_devices": [
				{"neuron_device": 0, "neuron_cores": 2, "memory_size": 34359738368, "memory_used": 1073741824, "nc_utilization": 12.5},
				{"neuron_device": 1, "neuron_cores": 2, "memory_size": 34359738368}
			]
		}`)

		devices, err := parseJSONOutput(data)
		if err != nil {
			t.Fatalf("parseJSONOutput() failed: %v", err)
		}

		if len(devices) != 2 {
			t.Fatalf("expected 2 devices, got %d", len(devices))
		}

		d := devices[0]
		if d.ID != 0 || d.CoreCount != 2 {
			t.Errorf("unexpected device 0: %+v", d)
		}
		if d.MemoryTotalBytes != 34359738368 {
			t.Errorf("MemoryTotalBytes = %d, want 34359738368", d.MemoryTotalBytes)
		}
		if d.MemoryUsedBytes != 1073741824 {
			t.Errorf("MemoryUsedBytes = %d, want 1073741824", d.MemoryUsedBytes)
		}
		if d.UtilizationPercent != 12.5 {
			t.Errorf("UtilizationPercent = %v, want 12.5", d.UtilizationPercent)
		}

		// Missing fields default to zero.
		if devices[1].MemoryUsedBytes != 0 || devices[1].UtilizationPercent != 0 {
			t.Errorf("expected zero defaults, got %+v", devices[1])
		}
	})

	t.Run("alternate field spellings", func(t *testing.T) {
		data := []byte(`{
			"neuron_devices": [
				{"neuron_device": 0, "nc_count": 4, "memory": 17179869184}
			]
		}`)

		devices, err := parseJSONOutput(data)
		if err != nil {
			t.Fatalf("parseJSONOutput() failed: %v", err)
		}

		if len(devices) != 1 {
			t.Fatalf("expected 1 device, got %d", len(devices))
		}
		if devices[0].CoreCount != 4 {
			t.Errorf("CoreCount = %d, want 4 (nc_count spelling)", devices[0].CoreCount)
		}
		if devices[0].MemoryTotalBytes != 17179869184 {
			t.Errorf("MemoryTotalBytes = %d, want 17179869184 (memory spelling)", devices[0].MemoryTotalBytes)
		}
	})

	t.Run("missing device id falls back to index", func(t *testing.T) {
		data := []byte(`{
			"neuron_devices": [
				{"neuron_cores": 2},
				{"neuron_cores": 2}
			]
		}`)

		devices, err := parseJSONOutput(data)
		if err != nil {
			t.Fatalf("parseJSONOutput() failed: %v", err)
		}

		if devices[0].ID != 0 || devices[1].ID != 1 {
			t.Errorf("expected index-based ids, got %d and %d", devices[0].ID, devices[1].ID)
		}
	})

	t.Run("empty device list", func(t *testing.T) {
		devices, err := parseJSONOutput([]byte(`{"neuron_devices": []}`))
		if err != nil {
			t.Fatalf("parseJSONOutput() failed: %v", err)
		}
		if len(devices) != 0 {
			t.Errorf("expected no devices, got %d", len(devices))
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseJSONOutput([]byte("not json"))
		if err == nil {
			t.Fatal("expected error for invalid json")
		}
	})
}

func TestParseTableOutput(t *testing.T) {
	t.Run("standard table", func(t *testing.T) {
		data := []byte(`+--------+--------+--------+---------------+
| NEURON | NEURON | NEURON | PCI           |
| DEVICE | CORES  | MEMORY | BDF           |
+--------+--------+--------+---------------+
| 0      | 2      | 32 GB  | 0000:00:1e.0  |
| 1      | 2      | 32 GB  | 0000:00:1f.0  |
+--------+--------+--------+---------------+
`)

		devices, err := parseTableOutput(data)
		if err != nil {
			t.Fatalf("parseTableOutput() failed: %v", err)
		}

		if len(devices) != 2 {
			t.Fatalf("expected 2 devices, got %d", len(devices))
		}
		if devices[0].ID != 0 || devices[0].CoreCount != 2 {
			t.Errorf("unexpected device 0: %+v", devices[0])
		}
		if devices[0].MemoryTotalBytes != 32<<30 {
			t.Errorf("MemoryTotalBytes = %d, want %d", devices[0].MemoryTotalBytes, uint64(32)<<30)
		}
		if devices[1].ID != 1 {
			t.Errorf("device 1 ID = %d, want 1", devices[1].ID)
		}
	})

	t.Run("table with no data rows", func(t *testing.T) {
		data := []byte(`+--------+--------+--------+
| NEURON | NEURON | NEURON |
| DEVICE | CORES  | MEMORY |
+--------+--------+--------+
`)

		devices, err := parseTableOutput(data)
		if err != nil {
			t.Fatalf("parseTableOutput() failed: %v", err)
		}
		if len(devices) != 0 {
			t.Errorf("expected no devices, got %d", len(devices))
		}
	})

	t.Run("unrecognized output", func(t *testing.T) {
		_, err := parseTableOutput([]byte("neuron-ls: command error\nsomething went wrong\n"))
		if err == nil {
			t.Fatal("expected error for unrecognized output")
		}
	})
}

func TestParseMemorySize(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{input: "32 GB", want: 32 << 30},
		{input: "16 GiB", want: 16 << 30},
		{input: "16384 MB", want: 16384 << 20},
		{input: "1 TB", want: 1 << 40},
		{input: "2048", want: 2048},
		{input: "512 B", want: 512},
		{input: "", wantErr: true},
		{input: "lots GB", wantErr: true},
		{input: "32 parsecs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMemorySize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMemorySize(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseMemorySize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollect_ToolMissing(t *testing.T) {
	// Skip if neuron-ls is actually available (we can't test the missing path)
	if _, err := exec.LookPath(neuronLSCommand); err == nil {
		t.Skip("neuron-ls is available, skipping missing-tool test")
	}

	_, err := NewCollector().Collect(context.Background())
	if err == nil {
		t.Fatal("expected error when neuron-ls is missing")
	}
}

func TestCollect_FakeTool(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "neuron-ls")
	script := `#!/bin/sh
if [ "$1" = "--json" ]; then
  echo '{"neuron_devices": [{"neuron_device": 0, "neuron_cores": 2, "memory_size": 34359738368}]}'
else
  echo "unexpected invocation" >&2
  exit 1
fi
`
	if err := os.WriteFile(fake, []byte(script), 0700); err != nil {
		t.Fatal(err)
	}

	orig := neuronLSCommand
	neuronLSCommand = fake
	t.Cleanup(func() { neuronLSCommand = orig })

	devices, err := NewCollector().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	if len(devices) != 1 {
		t.Fatalf("expected 1 device, got %d", len(devices))
	}
	if devices[0].CoreCount != 2 || devices[0].MemoryTotalBytes != 34359738368 {
		t.Errorf("unexpected device: %+v", devices[0])
	}
}

func TestCollect_FakeToolTableFallback(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "neuron-ls")
	// Older tool: --json is rejected, plain invocation prints the table.
	script := `#!/bin/sh
if [ "$1" = "--json" ]; then
  echo "unknown flag: --json" >&2
  exit 2
fi
cat <<'EOF'
+--------+--------+--------+
| DEVICE | CORES  | MEMORY |
+--------+--------+--------+
| 0      | 2      | 32 GB  |
+--------+--------+--------+
EOF
`
	if err := os.WriteFile(fake, []byte(script), 0700); err != nil {
		t.Fatal(err)
	}

	orig := neuronLSCommand
	neuronLSCommand = fake
	t.Cleanup(func() { neuronLSCommand = orig })

	devices, err := NewCollector().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	if len(devices) != 1 {
		t.Fatalf("expected 1 device, got %d", len(devices))
	}
	if devices[0].MemoryTotalBytes != 32<<30 {
		t.Errorf("MemoryTotalBytes = %d, want %d", devices[0].MemoryTotalBytes, uint64(32)<<30)
	}
}

func TestCollect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCollector().Collect(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}
