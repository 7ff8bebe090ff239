// Package cli implements the command-line interface for the neurotune tool.
//
// # Overview
//
// The neurotune CLI sizes, verifies, and tunes vLLM serving deployments on
// AWS Neuron hosts. It is designed for operators standing up inference on
// Inferentia instances: it checks host readiness, derives serving parameters
// from the hardware, watches the running server, and measures it under load.
//
// # Commands
//
// check - Verify host readiness:
//
//	neurotune check [--fail-on-error]
//
// Runs memory, disk, binary, and service checks and reports pass/fail/skip
// per check. A failed check is a finding in the result, not a command error,
// unless --fail-on-error is given.
//
// snapshot - Capture host compute resources:
//
//	neurotune snapshot [--output FILE] [--format json|yaml|table]
//
// Captures CPU, memory, and Neuron accelerator inventory. Hosts without
// Neuron tooling produce a degraded CPU-only snapshot with a note.
//
// advise - Recommend serving parameters:
//
//	neurotune advise [--snapshot FILE] [--apply] [--print-args] [--tuning FILE]
//
// Resolves the snapshot against tiered sizing tables and writes the
// recommended parameter set. With --apply the recommendation also becomes
// the current set; with --print-args the vllm serve command line is printed.
//
// config - Inspect and edit stored parameters:
//
//	neurotune config show [--recommended]
//	neurotune config set key=value [key=value ...]
//
// monitor - Watch the running server:
//
//	neurotune monitor [--interval 2s] [--once] [--metrics-addr :9090]
//
// Polls the host and the vLLM metrics endpoint, derives throughput and
// latency rates, and renders parameter advice when thresholds are crossed.
//
// loadtest - Measure the server under load:
//
//	neurotune loadtest [--runs N] [--rate RPS] [--timeout D]
//
// Drives the built-in prompt suite against the completions endpoint and
// aggregates latency and output statistics per prompt category.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -f   Output format: json, yaml, table (default: json)
//	--log-level    Logging verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	NEUROTUNE_LOG_LEVEL     Logging verbosity
//	NEUROTUNE_MODEL         Model identifier for requests and launch args
//	NEUROTUNE_ENDPOINT      Base URL of the vLLM server
//	NEUROTUNE_METRICS_PATH  Metrics path on the vLLM server
//	NEUROTUNE_INTERVAL      Monitor polling interval
//	NEUROTUNE_CONFIG_DIR    Directory for persisted parameter files
//	NEUROTUNE_RESULTS_DIR   Directory for load test results
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, --fail-on-error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/preflight - Host readiness checks
//   - pkg/snapshotter - Resource snapshot collection
//   - pkg/advisor - Sizing table resolution
//   - pkg/monitor - Polling loop and status rendering
//   - pkg/loadtest - Prompt suite driver
//   - pkg/config - Parameter persistence
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/neurotune/neurotune/pkg/cli.version=1.0.0'"
package cli
