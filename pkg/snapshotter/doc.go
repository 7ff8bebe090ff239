// Package snapshotter captures compute resource snapshots of the local host.
//
// # Overview
//
// The snapshotter package orchestrates parallel collection of host resources
// (physical CPU cores, system memory) and Neuron accelerator inventory
// (devices, NeuronCores, device memory) and produces typed snapshots that can
// be serialized for inspection or fed to the parameter advisor.
//
// # Core Types
//
// Snapshotter: Interface for capture-and-serialize
//
//	type Snapshotter interface {
//	    Measure(ctx context.Context) error
//	}
//
// Capturer: Interface for typed in-memory capture
//
//	type Capturer interface {
//	    Capture(ctx context.Context) (*Snapshot, error)
//	}
//
// NodeSnapshotter: Production implementation that probes the current node
//
//	type NodeSnapshotter struct {
//	    Version    string                // Tool version for the header
//	    Factory    collector.Factory     // Collector factory (optional)
//	    Serializer serializer.Serializer // Output serializer (optional)
//	}
//
// Snapshot: Captured resource data
//
//	type Snapshot struct {
//	    Header                     // API version, kind, metadata
//	    CPUCount                 int
//	    HostMemoryTotalBytes     uint64
//	    HostMemoryAvailableBytes uint64
//	    Accelerators             []Accelerator
//	    Notes                    []string // degradation notes
//	}
//
// # Usage
//
// Snapshot to stdout with defaults (JSON):
//
//	s := &snapshotter.NodeSnapshotter{Version: "v1.0.0"}
//
//	ctx := context.Background()
//	if err := s.Measure(ctx); err != nil {
//	    log.Fatalf("snapshot failed: %v", err)
//	}
//
// Typed capture for recommendation:
//
//	s := &snapshotter.NodeSnapshotter{Version: "v1.0.0"}
//	snap, err := s.Capture(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(snap.TotalCoreCount(), snap.TotalAcceleratorMemoryGiB())
//
// With timeout:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	s := &snapshotter.NodeSnapshotter{Version: "v1.0.0"}
//	if err := s.Measure(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Snapshot Structure
//
// Snapshots contain a header and the probed resources:
//
//	apiVersion: neurotune.dev/v1alpha1
//	kind: ResourceSnapshot
//	metadata:
//	  version: v1.0.0
//	  timestamp: 2025-01-15T10:30:00Z
//	  source-host: ip-10-0-1-17
//	cpuCount: 8
//	hostMemoryTotalBytes: 33582952448
//	hostMemoryAvailableBytes: 31866142720
//	accelerators:
//	  - id: 0
//	    coreCount: 2
//	    memoryTotalBytes: 34359738368
//	    memoryUsedBytes: 0
//	    utilizationPercent: 0
//
// # Parallel Collection
//
// NodeSnapshotter runs both collectors concurrently using errgroup, each
// bounded by the collector timeout from pkg/defaults:
//  1. Host resources (/proc/cpuinfo, /proc/meminfo)
//  2. Neuron devices (neuron-ls)
//
// # Error Handling
//
// The two probes carry different weights:
//   - Host probe failure is fatal: Capture returns a structured error with
//     code UNAVAILABLE and no snapshot.
//   - Accelerator probe failure degrades the snapshot: the accelerator list
//     stays empty and a note is appended, but Capture succeeds. Hosts
//     without Neuron tooling still get CPU-only snapshots.
//   - Context cancellation surfaces as ctx.Err().
//
// A host that reports zero Neuron devices from a working probe is a valid
// snapshot with no note.
//
// # Observability
//
// The snapshotter exports Prometheus metrics:
//   - neurotune_snapshot_collection_duration_seconds: Total collection time
//   - neurotune_snapshot_collector_duration_seconds{collector}: Per-collector timing
//   - neurotune_snapshot_collection_total{status}: Attempt outcomes
//   - neurotune_snapshot_accelerators: Device count in the last snapshot
//
// # Integration
//
// The snapshotter is invoked by:
//   - pkg/cli - snapshot and advise commands
//   - pkg/monitor - periodic accelerator readings
//
// It depends on:
//   - pkg/collector - Host and accelerator probes
//   - pkg/serializer - Output formatting
//
// Snapshots are consumed by:
//   - pkg/advisor - Parameter recommendation
//   - External analysis tools
package snapshotter
