package recommender

import (
	"fmt"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/vllm"
)

// Engine evaluates runtime metrics against thresholds and produces
// parameter advice for the operator.
type Engine struct {
	Version    string
	thresholds Thresholds
}

// Option is a functional option for configuring the Engine
type Option func(*Engine)

func WithVersion(version string) Option {
	return func(e *Engine) {
		e.Version = version
	}
}

// WithThresholds replaces the default rule bounds, typically with values
// from a tuning file.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// New creates a new Engine with the provided options.
func New(opts ...Option) *Engine {
	e := &Engine{
		thresholds: DefaultThresholds(),
	}

	// Apply options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Thresholds returns the engine's active rule bounds.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Evaluate applies the threshold rules to one tick of runtime metrics.
// Rules are independent: every matching category appears in the result and
// non-matching categories are absent. Memory usage inside the
// [MemoryLow, MemoryHigh] band produces no memory advice.
func (e *Engine) Evaluate(metrics vllm.RuntimeMetrics, params config.ParameterSet) Advice {
	advice := Advice{}

	if metrics.MemoryUsageFraction > e.thresholds.MemoryHigh {
		advice[CategoryMemoryHigh] = []string{
			fmt.Sprintf("lower max_model_len (current: %d)", params.MaxModelLen),
			fmt.Sprintf("lower max_num_seqs (current: %d)", params.MaxNumSeqs),
		}
	}

	if metrics.MemoryUsageFraction < e.thresholds.MemoryLow {
		advice[CategoryMemoryLow] = []string{
			fmt.Sprintf("raise max_num_seqs (current: %d) to improve utilization", params.MaxNumSeqs),
		}
	}

	if metrics.FirstTokenLatencySeconds > e.thresholds.FirstTokenLatencyHigh {
		advice[CategoryLatencyHigh] = []string{
			fmt.Sprintf("lower max_num_seqs (current: %d)", params.MaxNumSeqs),
			fmt.Sprintf("check block_size (current: %d)", params.BlockSize),
		}
	}

	if metrics.TokenThroughputPerSecond < e.thresholds.TokenThroughputLow {
		advice[CategoryThroughputLow] = []string{
			fmt.Sprintf("review tensor_parallel_size (current: %d)", params.TensorParallelSize),
			"consider raising concurrency once the server is under load",
		}
	}

	evaluateTotal.Inc()
	for _, c := range advice.Categories() {
		adviceTotal.WithLabelValues(c.String()).Inc()
	}

	return advice
}
