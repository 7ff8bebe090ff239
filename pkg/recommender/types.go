package recommender

import (
	"fmt"
)

// Category identifies a class of runtime parameter advice.
type Category string

// Advice categories. Render order is fixed: memory first, then latency,
// then throughput.
const (
	CategoryMemoryHigh    Category = "memory_high"
	CategoryMemoryLow     Category = "memory_low"
	CategoryLatencyHigh   Category = "latency_high"
	CategoryThroughputLow Category = "throughput_low"
)

var renderOrder = []Category{
	CategoryMemoryHigh,
	CategoryMemoryLow,
	CategoryLatencyHigh,
	CategoryThroughputLow,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the recognized categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMemoryHigh, CategoryMemoryLow, CategoryLatencyHigh, CategoryThroughputLow:
		return true
	default:
		return false
	}
}

// Thresholds holds the bounds the engine evaluates runtime metrics against.
// The tuning file may override any of them.
type Thresholds struct {
	// MemoryHigh is the accelerator memory usage fraction above which the
	// memory_high rule fires.
	MemoryHigh float64 `json:"memory_high" yaml:"memory_high"`

	// MemoryLow is the accelerator memory usage fraction below which the
	// memory_low rule fires. Usage inside [MemoryLow, MemoryHigh] yields no
	// memory advice.
	MemoryLow float64 `json:"memory_low" yaml:"memory_low"`

	// FirstTokenLatencyHigh is the cumulative first-token latency in
	// seconds above which the latency_high rule fires.
	FirstTokenLatencyHigh float64 `json:"first_token_latency_high" yaml:"first_token_latency_high"`

	// TokenThroughputLow is the token throughput in tokens per second below
	// which the throughput_low rule fires.
	TokenThroughputLow float64 `json:"token_throughput_low" yaml:"token_throughput_low"`
}

// DefaultThresholds returns the built-in rule bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MemoryHigh:            0.9,
		MemoryLow:             0.5,
		FirstTokenLatencyHigh: 1.0,
		TokenThroughputLow:    10.0,
	}
}

// Validate checks that the thresholds are usable: memory bounds are
// fractions with low strictly below high, and the latency and throughput
// bounds are not negative.
func (t Thresholds) Validate() error {
	if t.MemoryLow <= 0 || t.MemoryLow >= 1 {
		return fmt.Errorf("memory_low must be in (0, 1), got %g", t.MemoryLow)
	}
	if t.MemoryHigh <= 0 || t.MemoryHigh > 1 {
		return fmt.Errorf("memory_high must be in (0, 1], got %g", t.MemoryHigh)
	}
	if t.MemoryLow >= t.MemoryHigh {
		return fmt.Errorf("memory_low %g must be below memory_high %g", t.MemoryLow, t.MemoryHigh)
	}
	if t.FirstTokenLatencyHigh <= 0 {
		return fmt.Errorf("first_token_latency_high must be positive, got %g", t.FirstTokenLatencyHigh)
	}
	if t.TokenThroughputLow < 0 {
		return fmt.Errorf("token_throughput_low must not be negative, got %g", t.TokenThroughputLow)
	}
	return nil
}

// Advice maps each firing category to its suggestions. An empty map means
// no rule fired.
type Advice map[Category][]string

// Categories returns the firing categories in render order.
func (a Advice) Categories() []Category {
	out := make([]Category, 0, len(a))
	for _, c := range renderOrder {
		if _, ok := a[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether no rule fired.
func (a Advice) Empty() bool {
	return len(a) == 0
}
