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

package preflight

import (
	"time"

	"github.com/neurotune/neurotune/pkg/header"
)

// Status represents the overall readiness outcome.
type Status string

const (
	// StatusPass indicates all checks passed.
	StatusPass Status = "pass"

	// StatusFail indicates one or more checks failed.
	StatusFail Status = "fail"

	// StatusPartial indicates some checks couldn't be evaluated.
	StatusPartial Status = "partial"
)

// CheckStatus represents the outcome of a single readiness check.
type CheckStatus string

const (
	// CheckStatusPass indicates the check was satisfied.
	CheckStatusPass CheckStatus = "pass"

	// CheckStatusFail indicates the check was not satisfied.
	CheckStatusFail CheckStatus = "fail"

	// CheckStatusSkip indicates the check couldn't be evaluated on this host.
	CheckStatusSkip CheckStatus = "skip"
)

// Result represents the complete readiness outcome.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Summary contains aggregate check statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Checks contains per-check details.
	Checks []Check `json:"checks" yaml:"checks"`
}

// Summary contains aggregate statistics about the readiness run.
type Summary struct {
	// Passed is the count of checks that were satisfied.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the count of checks that were not satisfied.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the count of checks that couldn't be evaluated.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Total is the total number of checks evaluated.
	Total int `json:"total" yaml:"total"`

	// Status is the overall readiness status.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the readiness run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Check represents the result of one readiness check.
type Check struct {
	// Name is the dotted check name (e.g. "binary.neuron-ls").
	Name string `json:"name" yaml:"name"`

	// Status is the outcome of this check.
	Status CheckStatus `json:"status" yaml:"status"`

	// Detail provides the measured value or the reason for a failure or skip.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// NewResult creates a new Result with initialized slices.
func NewResult() *Result {
	return &Result{
		Checks: make([]Check, 0),
	}
}

// Failed reports whether any check failed.
func (r *Result) Failed() bool {
	return r.Summary.Failed > 0
}
