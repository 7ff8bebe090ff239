// Package recommender turns runtime metrics into parameter tuning advice.
//
// # Overview
//
// The recommender package evaluates one tick of serving metrics against a
// small set of threshold rules and reports which parameters the operator
// should consider changing. It is the analysis half of the monitor loop:
// pkg/vllm produces the RuntimeMetrics, this package produces the Advice.
//
// # Rules
//
// Four independent rules, one category each:
//
//   - memory_high: accelerator memory usage above MemoryHigh. Advice names
//     max_model_len and max_num_seqs with their current values.
//   - memory_low: accelerator memory usage below MemoryLow. The band
//     between the two bounds yields no memory advice.
//   - latency_high: cumulative first-token latency above
//     FirstTokenLatencyHigh. Advice names max_num_seqs and block_size.
//   - throughput_low: token throughput below TokenThroughputLow. Advice
//     names tensor_parallel_size. This rule also fires on an idle server;
//     the monitor renders idle state alongside rather than suppressing it.
//
// Every rule that matches contributes its category to the result; rules
// that do not match leave no trace. Evaluation is deterministic and does
// no I/O.
//
// # Usage
//
//	engine := recommender.New(
//	    recommender.WithVersion("v1.0.0"),
//	)
//
//	advice := engine.Evaluate(metrics, params)
//	for _, category := range advice.Categories() {
//	    fmt.Println(category)
//	    for _, suggestion := range advice[category] {
//	        fmt.Println("  -", suggestion)
//	    }
//	}
//
// Thresholds are data. The defaults live in DefaultThresholds; a tuning
// file may replace them via WithThresholds after validation.
//
// # Observability
//
// The engine exports Prometheus metrics:
//   - neurotune_recommend_evaluations_total: Evaluations performed
//   - neurotune_recommend_advice_total{category}: Advice occurrences
//
// # Integration
//
// The engine is used by:
//   - pkg/monitor - per-tick evaluation
//   - pkg/cli - monitor command wiring
//
// It depends on:
//   - pkg/vllm - RuntimeMetrics input
//   - pkg/config - current ParameterSet for advice text
package recommender
