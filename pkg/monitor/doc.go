// Package monitor runs the live tuning feedback loop.
//
// # Overview
//
// Each tick the monitor probes the host's Neuron devices and scrapes the
// vLLM metrics endpoint concurrently, joins the results into a runtime
// view, evaluates the advice rules against the parameters currently in
// effect, and renders a plain text status block. The loop is the glue
// between the collection packages and the recommendation engine; all
// decision logic lives in pkg/advisor and pkg/recommender.
//
// # Degradation
//
// The loop is built to keep running on a half-broken host. The only fatal
// condition is a host probe failure on the very first tick, which means
// the tool cannot see the machine at all. After that:
//
//   - a failed resource probe contributes an empty snapshot and a note
//   - an unreachable metrics endpoint contributes zero counters and a note
//   - a failed parameter load falls back to the built-in defaults
//
// Each external call runs under its own timeout, and both legs of a tick
// are joined before the runtime view is assembled, so a tick never mixes
// fresh counters with a stale memory reading.
//
// # Stopping
//
// Run returns when its context is cancelled or when the operator enters q
// or quit on the watched reader. With WithOnce a single tick is rendered
// and Run returns immediately.
//
// # Usage
//
//	m := monitor.New(
//	    monitor.WithVersion("v1.0.0"),
//	    monitor.WithInterval(2*time.Second),
//	    monitor.WithQuitReader(os.Stdin),
//	)
//
//	if err := m.Run(ctx); err != nil {
//	    return err
//	}
//
// # Observability
//
// The loop exports Prometheus metrics:
//   - neurotune_monitor_tick_duration_seconds: Tick duration
//   - neurotune_monitor_ticks_total{outcome}: Ticks by outcome
//   - neurotune_monitor_last_tick_timestamp_seconds: Last tick time
//
// With WithMetricsAddress set, the loop serves /metrics and /healthz on
// that address for the duration of the run.
package monitor
