package advisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/errors"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/snapshotter"
)

// ParameterRecommender derives serving parameters from a resource snapshot.
type ParameterRecommender interface {
	Recommend(ctx context.Context, snap *snapshotter.Snapshot) (config.ParameterSet, error)
}

// Advisor maps a resource snapshot to recommended serving parameters via
// tiered table lookup. Implements the ParameterRecommender interface.
type Advisor struct {
	Version string

	tables Tables
}

// Option is a functional option for configuring the Advisor.
type Option func(*Advisor)

// WithVersion sets the tool version stamped on recommendation artifacts.
func WithVersion(version string) Option {
	return func(a *Advisor) {
		a.Version = version
	}
}

// WithTables replaces the built-in sizing tables, typically with tables
// merged from a tuning file.
func WithTables(tables Tables) Option {
	return func(a *Advisor) {
		a.tables = tables
	}
}

// New creates a new Advisor with the provided options. Without options it
// uses the built-in sizing tables.
func New(opts ...Option) *Advisor {
	a := &Advisor{
		tables: DefaultTables(),
	}

	// Apply options
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Tables returns the sizing tables the advisor resolves against.
func (a *Advisor) Tables() Tables {
	return a.tables
}

// Recommend derives serving parameters from the snapshot. Tensor
// parallelism follows the total NeuronCore count; block size, sequence
// count, and context length follow the total accelerator memory. Sampling
// parameters keep their defaults. A snapshot with no accelerators resolves
// to the floor tier of every table.
func (a *Advisor) Recommend(ctx context.Context, snap *snapshotter.Snapshot) (config.ParameterSet, error) {
	if snap == nil {
		adviseTotal.WithLabelValues("error").Inc()
		return config.ParameterSet{}, errors.New(errors.ErrCodeInvalidRequest, "snapshot cannot be nil")
	}

	// Check for context cancellation
	if ctx.Err() != nil {
		adviseTotal.WithLabelValues("error").Inc()
		return config.ParameterSet{}, ctx.Err()
	}

	// Track lookup duration
	start := time.Now()
	defer func() {
		adviseDuration.Observe(time.Since(start).Seconds())
	}()

	cores := float64(snap.TotalCoreCount())
	memGiB := snap.TotalAcceleratorMemoryGiB()

	params := config.Default()
	params.TensorParallelSize = a.tables.TensorParallel.Lookup(cores)
	params.BlockSize = a.tables.BlockSize.Lookup(memGiB)
	params.MaxNumSeqs = a.tables.MaxNumSeqs.Lookup(memGiB)
	params.MaxModelLen = a.tables.MaxModelLen.Lookup(memGiB)

	slog.Debug("derived serving parameters from snapshot",
		"accelerators", len(snap.Accelerators),
		"total_cores", snap.TotalCoreCount(),
		"total_memory_gib", memGiB,
		"tensor_parallel_size", params.TensorParallelSize,
		"block_size", params.BlockSize,
		"max_num_seqs", params.MaxNumSeqs,
		"max_model_len", params.MaxModelLen,
	)

	adviseTotal.WithLabelValues("success").Inc()

	return params, nil
}

// Recommendation is the serialized artifact of a parameter recommendation:
// the snapshot facts the lookup keyed on and the parameters it produced.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	// Inputs summarizes the snapshot values the sizing tables keyed on.
	Inputs Inputs `json:"inputs" yaml:"inputs"`

	// Parameters is the recommended serving parameter set.
	Parameters config.ParameterSet `json:"parameters" yaml:"parameters"`

	// Notes carries degradations recorded in the underlying snapshot.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Inputs are the snapshot facts a recommendation was keyed on.
type Inputs struct {
	// AcceleratorCount is the number of Neuron devices in the snapshot.
	AcceleratorCount int `json:"acceleratorCount" yaml:"acceleratorCount"`

	// TotalCoreCount is the NeuronCore count summed across devices.
	TotalCoreCount int `json:"totalCoreCount" yaml:"totalCoreCount"`

	// TotalAcceleratorMemoryGiB is the device memory summed across devices.
	TotalAcceleratorMemoryGiB float64 `json:"totalAcceleratorMemoryGiB" yaml:"totalAcceleratorMemoryGiB"`
}

// BuildRecommendation runs Recommend and wraps the result in a versioned
// artifact ready for serialization.
func (a *Advisor) BuildRecommendation(ctx context.Context, snap *snapshotter.Snapshot) (*Recommendation, error) {
	params, err := a.Recommend(ctx, snap)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Inputs: Inputs{
			AcceleratorCount:          len(snap.Accelerators),
			TotalCoreCount:            snap.TotalCoreCount(),
			TotalAcceleratorMemoryGiB: snap.TotalAcceleratorMemoryGiB(),
		},
		Parameters: params,
		Notes:      snap.Notes,
	}
	rec.Init(header.KindRecommendation, snapshotter.FullAPIVersion, a.Version)

	return rec, nil
}
