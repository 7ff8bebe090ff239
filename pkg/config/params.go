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

package config

import (
	"fmt"
	"strconv"
)

// Default serving parameter values. Conservative enough to start a small
// model on a single Neuron device; the advisor raises them when the host
// has the resources.
const (
	DefaultTensorParallelSize = 2
	DefaultBlockSize          = 8
	DefaultMaxNumSeqs         = 4
	DefaultMaxModelLen        = 2048
	DefaultTemperature        = 0.6
	DefaultTopP               = 0.95
)

// ParameterSet holds the vLLM serving parameters this tool manages.
// The first four are server launch arguments; temperature and top_p are
// request-time sampling parameters carried alongside them.
type ParameterSet struct {
	// TensorParallelSize is the number of NeuronCores the model is
	// partitioned across.
	TensorParallelSize int `json:"tensor_parallel_size" yaml:"tensor_parallel_size"`

	// BlockSize is the KV-cache block size in tokens.
	BlockSize int `json:"block_size" yaml:"block_size"`

	// MaxNumSeqs is the maximum number of sequences per iteration.
	MaxNumSeqs int `json:"max_num_seqs" yaml:"max_num_seqs"`

	// MaxModelLen is the maximum context length in tokens.
	MaxModelLen int `json:"max_model_len" yaml:"max_model_len"`

	// Temperature is the sampling temperature, 0-2.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// TopP is the nucleus sampling probability mass, (0, 1].
	TopP float64 `json:"top_p" yaml:"top_p"`
}

// Patch mirrors ParameterSet with pointer fields so a partial JSON object
// decodes into exactly the fields it names. Nil fields leave the target
// unchanged.
type Patch struct {
	TensorParallelSize *int     `json:"tensor_parallel_size,omitempty" yaml:"tensor_parallel_size,omitempty"`
	BlockSize          *int     `json:"block_size,omitempty" yaml:"block_size,omitempty"`
	MaxNumSeqs         *int     `json:"max_num_seqs,omitempty" yaml:"max_num_seqs,omitempty"`
	MaxModelLen        *int     `json:"max_model_len,omitempty" yaml:"max_model_len,omitempty"`
	Temperature        *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TopP               *float64 `json:"top_p,omitempty" yaml:"top_p,omitempty"`
}

// Default returns the default serving parameters.
func Default() ParameterSet {
	return ParameterSet{
		TensorParallelSize: DefaultTensorParallelSize,
		BlockSize:          DefaultBlockSize,
		MaxNumSeqs:         DefaultMaxNumSeqs,
		MaxModelLen:        DefaultMaxModelLen,
		Temperature:        DefaultTemperature,
		TopP:               DefaultTopP,
	}
}

// Validate checks that every parameter is in its legal range.
func (p ParameterSet) Validate() error {
	if p.TensorParallelSize < 1 {
		return fmt.Errorf("tensor_parallel_size must be at least 1, got %d", p.TensorParallelSize)
	}
	if p.BlockSize < 1 {
		return fmt.Errorf("block_size must be at least 1, got %d", p.BlockSize)
	}
	if p.MaxNumSeqs < 1 {
		return fmt.Errorf("max_num_seqs must be at least 1, got %d", p.MaxNumSeqs)
	}
	if p.MaxModelLen < 1 {
		return fmt.Errorf("max_model_len must be at least 1, got %d", p.MaxModelLen)
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", p.Temperature)
	}
	if p.TopP <= 0 || p.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1], got %g", p.TopP)
	}
	return nil
}

// Apply returns a copy of p with the patch's non-nil fields overriding.
// The receiver is never modified.
func (p ParameterSet) Apply(patch Patch) ParameterSet {
	out := p
	if patch.TensorParallelSize != nil {
		out.TensorParallelSize = *patch.TensorParallelSize
	}
	if patch.BlockSize != nil {
		out.BlockSize = *patch.BlockSize
	}
	if patch.MaxNumSeqs != nil {
		out.MaxNumSeqs = *patch.MaxNumSeqs
	}
	if patch.MaxModelLen != nil {
		out.MaxModelLen = *patch.MaxModelLen
	}
	if patch.Temperature != nil {
		out.Temperature = *patch.Temperature
	}
	if patch.TopP != nil {
		out.TopP = *patch.TopP
	}
	return out
}

// VLLMArgs renders the server launch arguments for these parameters.
// Temperature and top_p are request-time sampling parameters and are not
// part of the server command line.
func (p ParameterSet) VLLMArgs(model string, port int) []string {
	return []string{
		"--model", model,
		"--port", strconv.Itoa(port),
		"--tensor-parallel-size", strconv.Itoa(p.TensorParallelSize),
		"--block-size", strconv.Itoa(p.BlockSize),
		"--max-num-seqs", strconv.Itoa(p.MaxNumSeqs),
		"--max-model-len", strconv.Itoa(p.MaxModelLen),
	}
}
