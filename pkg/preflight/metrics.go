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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Readiness check metrics
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neurotune_preflight_duration_seconds",
			Help:    "Time taken to run the host readiness checks",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		},
	)

	checksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_preflight_checks_total",
			Help: "Total number of readiness checks by outcome",
		},
		[]string{"status"}, // pass, fail, or skip
	)

	checkRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_preflight_runs_total",
			Help: "Total number of readiness runs",
		},
		[]string{"status"}, // success or error
	)
)
