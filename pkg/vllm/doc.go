// Package vllm reads runtime performance metrics from a vLLM server.
//
// The package covers the read side of the tuning loop: Client scrapes the
// Prometheus text exposition from the server's metrics endpoint,
// ParseCounters extracts the handful of series this tool consumes into a
// RawCounters record, and Sampler turns successive counter observations
// into per-second rates. BuildSnapshot assembles the per-tick
// RuntimeMetrics the monitor renders and the recommendation engine
// evaluates.
//
// Typical tick:
//
//	client := vllm.NewClient(settings.MetricsURL())
//	sampler := vllm.NewSampler()
//
//	raw, err := client.Scrape(ctx)
//	if err != nil {
//	    // endpoint down: the tick proceeds with zero values
//	}
//	rates := sampler.Rates(raw, time.Now())
//	metrics := vllm.BuildSnapshot(raw, rates, snap.AcceleratorMemoryUsageFraction())
//
// The parser is deliberately line-oriented rather than a full exposition
// decoder: one malformed line is skipped, not fatal, so a partially
// readable body still yields the series that were present. Series the
// server does not expose remain zero.
//
// Sampler state lives for the process. The first observation primes the
// state and reports zero rates; a counter that moves backwards (server
// restart) clamps that rate to zero for the tick instead of going negative.
package vllm
