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

package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluation metrics
	evaluateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "neurotune_recommend_evaluations_total",
			Help: "Total number of runtime metric evaluations",
		},
	)

	adviceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neurotune_recommend_advice_total",
			Help: "Total advice occurrences by category",
		},
		[]string{"category"},
	)
)
