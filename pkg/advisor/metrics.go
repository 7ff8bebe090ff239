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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Parameter recommendation metrics
	adviseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neurotune_advise_duration_seconds",
			Help:    "Time taken to derive serving parameters from a snapshot",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	adviseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_advise_total",
			Help: "Total number of parameter recommendation attempts",
		},
		[]string{"status"}, // success or error
	)
)
