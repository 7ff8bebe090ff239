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

package vllm

// RawCounters holds the cumulative series extracted from one scrape of the
// vLLM metrics endpoint. Series absent from the body stay zero.
type RawCounters struct {
	// FirstTokenSecondsSum is the cumulative time-to-first-token histogram sum.
	FirstTokenSecondsSum float64

	// PerTokenSecondsSum is the cumulative per-output-token histogram sum.
	PerTokenSecondsSum float64

	// GenerationTokens is the cumulative generated token counter.
	GenerationTokens float64

	// SuccessfulRequests is the cumulative successful request counter,
	// summed across finish reasons.
	SuccessfulRequests float64

	// CacheUsageFraction is the KV-cache usage gauge, 0-1.
	CacheUsageFraction float64
}

// Rates holds per-second rates derived from successive scrapes.
type Rates struct {
	// TokensPerSecond is the token generation throughput.
	TokensPerSecond float64

	// RequestsPerSecond is the successful request completion rate.
	RequestsPerSecond float64
}

// RuntimeMetrics is the per-tick view of serving performance the monitor
// renders and the recommendation engine evaluates.
type RuntimeMetrics struct {
	// MemoryUsageFraction is used/total accelerator memory, 0-1.
	MemoryUsageFraction float64 `json:"memory_usage_fraction" yaml:"memory_usage_fraction"`

	// CacheUsagePercent is the KV-cache usage, 0-100.
	CacheUsagePercent float64 `json:"cache_usage_percent" yaml:"cache_usage_percent"`

	// FirstTokenLatencySeconds is the cumulative time-to-first-token sum.
	FirstTokenLatencySeconds float64 `json:"first_token_latency_seconds" yaml:"first_token_latency_seconds"`

	// PerTokenLatencySeconds is the cumulative per-output-token sum.
	PerTokenLatencySeconds float64 `json:"per_token_latency_seconds" yaml:"per_token_latency_seconds"`

	// TokenThroughputPerSecond is the derived token generation rate.
	TokenThroughputPerSecond float64 `json:"token_throughput_per_second" yaml:"token_throughput_per_second"`

	// RequestsPerSecond is the derived request completion rate.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// BuildSnapshot assembles the runtime metrics for one tick from the scraped
// counters, the derived rates, and the accelerator memory usage fraction.
// Every field is clamped to be non-negative.
func BuildSnapshot(raw RawCounters, rates Rates, memFraction float64) RuntimeMetrics {
	return RuntimeMetrics{
		MemoryUsageFraction:      nonNegative(memFraction),
		CacheUsagePercent:        nonNegative(raw.CacheUsageFraction * 100),
		FirstTokenLatencySeconds: nonNegative(raw.FirstTokenSecondsSum),
		PerTokenLatencySeconds:   nonNegative(raw.PerTokenSecondsSum),
		TokenThroughputPerSecond: nonNegative(rates.TokensPerSecond),
		RequestsPerSecond:        nonNegative(rates.RequestsPerSecond),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
