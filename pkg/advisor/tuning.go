package advisor

import (
	"fmt"

	"github.com/neurotune/neurotune/pkg/recommender"
	"github.com/neurotune/neurotune/pkg/serializer"
)

// Tuning is the schema of an operator-supplied tuning file. Any sizing
// table or rule threshold it names overrides the built-in; everything else
// keeps its default. The file may be YAML or JSON.
type Tuning struct {
	// Tables holds sizing table overrides.
	Tables TableOverrides `json:"tables,omitempty" yaml:"tables,omitempty"`

	// Thresholds holds runtime rule bound overrides.
	Thresholds ThresholdOverrides `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
}

// TableOverrides mirrors Tables with nil meaning keep the default table.
type TableOverrides struct {
	TensorParallel Table `json:"tensor_parallel_size,omitempty" yaml:"tensor_parallel_size,omitempty"`
	BlockSize      Table `json:"block_size,omitempty" yaml:"block_size,omitempty"`
	MaxNumSeqs     Table `json:"max_num_seqs,omitempty" yaml:"max_num_seqs,omitempty"`
	MaxModelLen    Table `json:"max_model_len,omitempty" yaml:"max_model_len,omitempty"`
}

// ThresholdOverrides mirrors recommender.Thresholds with pointer fields so
// a file can override a single bound without restating the rest.
type ThresholdOverrides struct {
	MemoryHigh            *float64 `json:"memory_high,omitempty" yaml:"memory_high,omitempty"`
	MemoryLow             *float64 `json:"memory_low,omitempty" yaml:"memory_low,omitempty"`
	FirstTokenLatencyHigh *float64 `json:"first_token_latency_high,omitempty" yaml:"first_token_latency_high,omitempty"`
	TokenThroughputLow    *float64 `json:"token_throughput_low,omitempty" yaml:"token_throughput_low,omitempty"`
}

// LoadTuning reads a tuning file. The format is detected from the file
// extension.
func LoadTuning(path string) (*Tuning, error) {
	t, err := serializer.FromFile[Tuning](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning file: %w", err)
	}
	return t, nil
}

// ResolveTables returns the default sizing tables with the tuning's
// overrides swapped in. The merged result is validated so a tuning file
// cannot smuggle in a table the lookup would misread.
func (t *Tuning) ResolveTables() (Tables, error) {
	out := DefaultTables()
	if t != nil {
		if t.Tables.TensorParallel != nil {
			out.TensorParallel = t.Tables.TensorParallel
		}
		if t.Tables.BlockSize != nil {
			out.BlockSize = t.Tables.BlockSize
		}
		if t.Tables.MaxNumSeqs != nil {
			out.MaxNumSeqs = t.Tables.MaxNumSeqs
		}
		if t.Tables.MaxModelLen != nil {
			out.MaxModelLen = t.Tables.MaxModelLen
		}
	}
	if err := out.Validate(); err != nil {
		return Tables{}, fmt.Errorf("invalid tuning tables: %w", err)
	}
	return out, nil
}

// ResolveThresholds returns the default rule thresholds with the tuning's
// overrides applied, validated.
func (t *Tuning) ResolveThresholds() (recommender.Thresholds, error) {
	out := recommender.DefaultThresholds()
	if t != nil {
		if t.Thresholds.MemoryHigh != nil {
			out.MemoryHigh = *t.Thresholds.MemoryHigh
		}
		if t.Thresholds.MemoryLow != nil {
			out.MemoryLow = *t.Thresholds.MemoryLow
		}
		if t.Thresholds.FirstTokenLatencyHigh != nil {
			out.FirstTokenLatencyHigh = *t.Thresholds.FirstTokenLatencyHigh
		}
		if t.Thresholds.TokenThroughputLow != nil {
			out.TokenThroughputLow = *t.Thresholds.TokenThroughputLow
		}
	}
	if err := out.Validate(); err != nil {
		return recommender.Thresholds{}, fmt.Errorf("invalid tuning thresholds: %w", err)
	}
	return out, nil
}
