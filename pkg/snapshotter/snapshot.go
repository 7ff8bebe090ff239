package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/neurotune/neurotune/pkg/collector"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/errors"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/serializer"

	"golang.org/x/sync/errgroup"
)

// NodeSnapshotter collects compute resource snapshots from the current node.
// It runs the host and accelerator collectors in parallel and assembles their
// results into a Snapshot. Host probe failures abort the measurement;
// accelerator probe failures degrade it to a CPU-only snapshot with a note.
type NodeSnapshotter struct {
	// Version is the tool version stamped into the snapshot header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer used by Measure. If nil, a stdout JSON
	// serializer is used.
	Serializer serializer.Serializer
}

// Measure captures a resource snapshot and serializes it with the configured
// Serializer. It implements the Snapshotter interface.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Capture(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	return nil
}

// Capture probes the host and accelerators and returns the assembled
// snapshot without serializing it. It implements the Capturer interface.
func (n *NodeSnapshotter) Capture(ctx context.Context) (*Snapshot, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting resource snapshot")

	// Track overall snapshot collection duration
	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindResourceSnapshot, FullAPIVersion, n.Version)
	if host, err := os.Hostname(); err == nil {
		snap.Metadata["source-host"] = host
	}

	var mu sync.Mutex

	// The errgroup context cancels the sibling collector as soon as the host
	// probe fails, so a hung accelerator probe cannot hold up the error.
	g, gctx := errgroup.WithContext(ctx)

	// Collect host CPU and memory
	g.Go(func() error {
		collectorStart := time.Now()
		defer func() {
			snapshotCollectorDuration.WithLabelValues("host").Observe(time.Since(collectorStart).Seconds())
		}()
		slog.Debug("collecting host resources")
		cctx, cancel := context.WithTimeout(gctx, defaults.CollectorTimeout)
		defer cancel()
		hc := n.Factory.CreateHostCollector()
		info, err := hc.Collect(cctx)
		if err != nil {
			slog.Error("failed to collect host resources", slog.String("error", err.Error()))
			return errors.Wrap(errors.ErrCodeUnavailable, "failed to collect host resources", err)
		}
		mu.Lock()
		snap.CPUCount = info.CPUCount
		snap.HostMemoryTotalBytes = info.MemoryTotalBytes
		snap.HostMemoryAvailableBytes = info.MemoryAvailableBytes
		mu.Unlock()
		slog.Debug("collected host resources",
			slog.Int("cpu_count", info.CPUCount),
			slog.Uint64("memory_total_bytes", info.MemoryTotalBytes))
		return nil
	})

	// Probe Neuron accelerators
	g.Go(func() error {
		collectorStart := time.Now()
		defer func() {
			snapshotCollectorDuration.WithLabelValues("neuron").Observe(time.Since(collectorStart).Seconds())
		}()
		slog.Debug("probing neuron devices")
		cctx, cancel := context.WithTimeout(gctx, defaults.CollectorTimeout)
		defer cancel()
		ac := n.Factory.CreateAcceleratorCollector()
		devices, err := ac.Collect(cctx)
		if err != nil {
			// A canceled parent context is a real error. Anything else means
			// the probe tooling is unavailable on this host, which degrades
			// the snapshot to CPU-only rather than failing it.
			if gctx.Err() != nil {
				return gctx.Err()
			}
			slog.Warn("neuron probe unavailable, continuing without accelerators",
				slog.String("error", err.Error()))
			mu.Lock()
			snap.Notes = append(snap.Notes, fmt.Sprintf("accelerator probe unavailable: %v", err))
			mu.Unlock()
			return nil
		}
		mu.Lock()
		for _, d := range devices {
			snap.Accelerators = append(snap.Accelerators, Accelerator{
				ID:                 d.ID,
				CoreCount:          d.CoreCount,
				MemoryTotalBytes:   d.MemoryTotalBytes,
				MemoryUsedBytes:    d.MemoryUsedBytes,
				UtilizationPercent: d.UtilizationPercent,
			})
		}
		mu.Unlock()
		slog.Debug("probed neuron devices", slog.Int("count", len(devices)))
		return nil
	})

	// Wait for both collectors to complete
	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotAcceleratorCount.Set(float64(len(snap.Accelerators)))

	slog.Debug("snapshot collection complete",
		slog.Int("cpu_count", snap.CPUCount),
		slog.Int("accelerators", len(snap.Accelerators)))

	return snap, nil
}
