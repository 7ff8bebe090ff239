// Package advisor derives vLLM serving parameters from host resources.
//
// # Overview
//
// The advisor package is the sizing half of the tool: given a resource
// snapshot (NeuronCore counts and accelerator memory from pkg/snapshotter)
// it selects a tensor parallel size, KV-cache block size, sequence limit,
// and context length by tiered table lookup. The result is a complete
// config.ParameterSet ready to persist or to render as vLLM launch
// arguments.
//
// # Tables
//
// Each parameter has a Table of tiers, highest bound first:
//
//	TensorParallel (by total NeuronCores): 8+ -> 8, 4+ -> 4, 2+ -> 2, else 1
//	BlockSize     (by accelerator GiB):  384+ -> 32, 256+ -> 24, 128+ -> 16, else 8
//	MaxNumSeqs    (by accelerator GiB):  384+ -> 16, 256+ -> 12, 128+ -> 8, else 4
//	MaxModelLen   (by accelerator GiB):  384+ -> 8192, 256+ -> 6144, 128+ -> 4096, else 2048
//
// Lookup scans from the top, so the metric resolves to the largest tier it
// qualifies for. Bounds are inclusive. Every table has a floor tier with
// bound 0, so a host with no accelerators still resolves to a complete,
// conservative parameter set.
//
// Tables are data, not code. A tuning file (YAML or JSON) can replace any
// table or runtime rule threshold:
//
//	tables:
//	  max_num_seqs:
//	    - {min: 512, value: 32}
//	    - {min: 0, value: 4}
//	thresholds:
//	  memory_high: 0.85
//
// Overrides are merged over the defaults and validated before use.
//
// # Usage
//
//	adv := advisor.New(
//	    advisor.WithVersion("v1.0.0"),
//	)
//
//	params, err := adv.Recommend(ctx, snap)
//	if err != nil {
//	    return err
//	}
//
// BuildRecommendation wraps the same lookup in a versioned artifact with
// the snapshot facts it keyed on, for serialization by the CLI.
//
// # Observability
//
// The advisor exports Prometheus metrics:
//   - neurotune_advise_duration_seconds: Lookup duration
//   - neurotune_advise_total{status}: Recommendation attempts
//
// # Integration
//
// The advisor is used by:
//   - pkg/cli - advise command wiring
//
// It depends on:
//   - pkg/snapshotter - Snapshot input
//   - pkg/config - ParameterSet output and defaults
//   - pkg/recommender - threshold schema for tuning files
package advisor
