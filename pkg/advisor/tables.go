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

package advisor

import (
	"fmt"
)

// Tier is a single step of a threshold table: any metric value at or above
// Min selects Value, unless a higher tier claims it first.
type Tier struct {
	// Min is the inclusive lower bound of the tier.
	Min float64 `json:"min" yaml:"min"`

	// Value is the parameter value this tier selects.
	Value int `json:"value" yaml:"value"`
}

// Table is an ordered list of tiers, highest Min first. The last tier must
// have Min 0 so every non-negative metric value lands somewhere.
type Table []Tier

// Lookup returns the value of the first tier whose lower bound the metric
// meets. Scanning from the highest bound down makes the result the largest
// tier the metric qualifies for.
func (t Table) Lookup(metric float64) int {
	for _, tier := range t {
		if metric >= tier.Min {
			return tier.Value
		}
	}
	// Unreachable for a validated table; the floor tier catches everything.
	return 0
}

// Validate checks the structural invariants Lookup depends on: at least one
// tier, bounds strictly descending, a floor tier with Min 0, positive
// values, and values that do not increase as bounds decrease.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("table must have at least one tier")
	}
	for i, tier := range t {
		if tier.Min < 0 {
			return fmt.Errorf("tier %d: min must not be negative, got %g", i, tier.Min)
		}
		if tier.Value < 1 {
			return fmt.Errorf("tier %d: value must be positive, got %d", i, tier.Value)
		}
		if i > 0 {
			if tier.Min >= t[i-1].Min {
				return fmt.Errorf("tier %d: min %g must be below previous min %g", i, tier.Min, t[i-1].Min)
			}
			if tier.Value > t[i-1].Value {
				return fmt.Errorf("tier %d: value %d must not exceed previous value %d", i, tier.Value, t[i-1].Value)
			}
		}
	}
	if t[len(t)-1].Min != 0 {
		return fmt.Errorf("last tier must have min 0, got %g", t[len(t)-1].Min)
	}
	return nil
}

// Tables holds one threshold table per recommended parameter. The tensor
// parallel table is keyed on the total NeuronCore count; the other three
// are keyed on total accelerator memory in GiB.
type Tables struct {
	TensorParallel Table `json:"tensor_parallel_size" yaml:"tensor_parallel_size"`
	BlockSize      Table `json:"block_size" yaml:"block_size"`
	MaxNumSeqs     Table `json:"max_num_seqs" yaml:"max_num_seqs"`
	MaxModelLen    Table `json:"max_model_len" yaml:"max_model_len"`
}

// DefaultTables returns the built-in sizing tables. The memory table
// floors match the config package defaults; the tensor parallel floor is
// 1 because a host with no NeuronCores cannot shard at all.
func DefaultTables() Tables {
	return Tables{
		TensorParallel: Table{
			{Min: 8, Value: 8},
			{Min: 4, Value: 4},
			{Min: 2, Value: 2},
			{Min: 0, Value: 1},
		},
		BlockSize: Table{
			{Min: 384, Value: 32},
			{Min: 256, Value: 24},
			{Min: 128, Value: 16},
			{Min: 0, Value: 8},
		},
		MaxNumSeqs: Table{
			{Min: 384, Value: 16},
			{Min: 256, Value: 12},
			{Min: 128, Value: 8},
			{Min: 0, Value: 4},
		},
		MaxModelLen: Table{
			{Min: 384, Value: 8192},
			{Min: 256, Value: 6144},
			{Min: 128, Value: 4096},
			{Min: 0, Value: 2048},
		},
	}
}

// Validate checks every table.
func (t Tables) Validate() error {
	if err := t.TensorParallel.Validate(); err != nil {
		return fmt.Errorf("tensor_parallel_size: %w", err)
	}
	if err := t.BlockSize.Validate(); err != nil {
		return fmt.Errorf("block_size: %w", err)
	}
	if err := t.MaxNumSeqs.Validate(); err != nil {
		return fmt.Errorf("max_num_seqs: %w", err)
	}
	if err := t.MaxModelLen.Validate(); err != nil {
		return fmt.Errorf("max_model_len: %w", err)
	}
	return nil
}
