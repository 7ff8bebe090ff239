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

package loadtest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Load test request metrics
	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neurotune_loadtest_request_duration_seconds",
			Help:    "Completion request latency including the response body",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_loadtest_requests_total",
			Help: "Total number of completion requests issued",
		},
		[]string{"status"}, // success or error
	)
)
