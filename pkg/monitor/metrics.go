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

package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Monitor loop metrics
	monitorTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neurotune_monitor_tick_duration_seconds",
			Help:    "Time taken by one monitor tick including rendering",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	monitorTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_monitor_ticks_total",
			Help: "Total number of monitor ticks",
		},
		[]string{"outcome"}, // ok, degraded, or error
	)

	monitorLastTick = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "neurotune_monitor_last_tick_timestamp_seconds",
			Help: "Unix time of the most recent completed tick",
		},
	)
)
