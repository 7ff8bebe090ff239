package recommender

import (
	"reflect"
	"strings"
	"testing"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/vllm"
)

// healthyMetrics sits inside every threshold: memory in the dead zone,
// latency under the bound, throughput above it.
func healthyMetrics() vllm.RuntimeMetrics {
	return vllm.RuntimeMetrics{
		MemoryUsageFraction:      0.7,
		CacheUsagePercent:        40,
		FirstTokenLatencySeconds: 0.5,
		PerTokenLatencySeconds:   0.05,
		TokenThroughputPerSecond: 50,
		RequestsPerSecond:        2,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantVer string
	}{
		{
			name:    "default",
			opts:    nil,
			wantVer: "",
		},
		{
			name:    "with version",
			opts:    []Option{WithVersion("v1.2.3")},
			wantVer: "v1.2.3",
		},
		{
			name:    "multiple options",
			opts:    []Option{WithVersion("v1.0.0"), WithVersion("v2.0.0")},
			wantVer: "v2.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...)
			if got.Version != tt.wantVer {
				t.Errorf("New() version = %v, want %v", got.Version, tt.wantVer)
			}
			if got.Thresholds() != DefaultThresholds() {
				t.Errorf("New() thresholds = %+v, want defaults", got.Thresholds())
			}
		})
	}
}

func TestNew_WithThresholds(t *testing.T) {
	custom := Thresholds{
		MemoryHigh:            0.8,
		MemoryLow:             0.3,
		FirstTokenLatencyHigh: 2.0,
		TokenThroughputLow:    5.0,
	}

	e := New(WithThresholds(custom))
	if e.Thresholds() != custom {
		t.Errorf("Thresholds() = %+v, want %+v", e.Thresholds(), custom)
	}
}

func TestEngine_Evaluate(t *testing.T) {
	params := config.Default()

	tests := []struct {
		name           string
		mutate         func(*vllm.RuntimeMetrics)
		wantCategories []Category
	}{
		{
			name:           "healthy metrics yield no advice",
			mutate:         func(m *vllm.RuntimeMetrics) {},
			wantCategories: []Category{},
		},
		{
			name: "memory above high bound",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.MemoryUsageFraction = 0.95
			},
			wantCategories: []Category{CategoryMemoryHigh},
		},
		{
			name: "memory exactly at high bound stays quiet",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.MemoryUsageFraction = 0.9
			},
			wantCategories: []Category{},
		},
		{
			name: "memory below low bound",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.MemoryUsageFraction = 0.3
			},
			wantCategories: []Category{CategoryMemoryLow},
		},
		{
			name: "memory exactly at low bound stays quiet",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.MemoryUsageFraction = 0.5
			},
			wantCategories: []Category{},
		},
		{
			name: "first token latency above bound",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.FirstTokenLatencySeconds = 1.5
			},
			wantCategories: []Category{CategoryLatencyHigh},
		},
		{
			name: "latency exactly at bound stays quiet",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.FirstTokenLatencySeconds = 1.0
			},
			wantCategories: []Category{},
		},
		{
			name: "throughput below bound",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.TokenThroughputPerSecond = 4
			},
			wantCategories: []Category{CategoryThroughputLow},
		},
		{
			name: "throughput exactly at bound stays quiet",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.TokenThroughputPerSecond = 10
			},
			wantCategories: []Category{},
		},
		{
			name: "idle server fires throughput rule",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.TokenThroughputPerSecond = 0
				m.RequestsPerSecond = 0
			},
			wantCategories: []Category{CategoryThroughputLow},
		},
		{
			name: "multiple rules fire independently",
			mutate: func(m *vllm.RuntimeMetrics) {
				m.MemoryUsageFraction = 0.95
				m.FirstTokenLatencySeconds = 2.0
				m.TokenThroughputPerSecond = 1
			},
			wantCategories: []Category{CategoryMemoryHigh, CategoryLatencyHigh, CategoryThroughputLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithVersion("v1.0.0"))
			metrics := healthyMetrics()
			tt.mutate(&metrics)

			advice := e.Evaluate(metrics, params)

			got := advice.Categories()
			if !reflect.DeepEqual(got, tt.wantCategories) {
				t.Errorf("Categories() = %v, want %v", got, tt.wantCategories)
			}
			if len(tt.wantCategories) == 0 && !advice.Empty() {
				t.Errorf("Empty() = false, want true")
			}
			for _, c := range got {
				if len(advice[c]) == 0 {
					t.Errorf("advice[%s] has no suggestions", c)
				}
			}
		})
	}
}

func TestEngine_Evaluate_NamesCurrentValues(t *testing.T) {
	params := config.ParameterSet{
		TensorParallelSize: 4,
		BlockSize:          16,
		MaxNumSeqs:         12,
		MaxModelLen:        4096,
		Temperature:        0.6,
		TopP:               0.95,
	}

	metrics := healthyMetrics()
	metrics.MemoryUsageFraction = 0.95
	metrics.FirstTokenLatencySeconds = 3.0
	metrics.TokenThroughputPerSecond = 1

	advice := New().Evaluate(metrics, params)

	assertContains := func(c Category, substr string) {
		t.Helper()
		joined := strings.Join(advice[c], "\n")
		if !strings.Contains(joined, substr) {
			t.Errorf("advice[%s] = %v, want mention of %q", c, advice[c], substr)
		}
	}

	assertContains(CategoryMemoryHigh, "max_model_len (current: 4096)")
	assertContains(CategoryMemoryHigh, "max_num_seqs (current: 12)")
	assertContains(CategoryLatencyHigh, "block_size (current: 16)")
	assertContains(CategoryThroughputLow, "tensor_parallel_size (current: 4)")
}

func TestEngine_Evaluate_Deterministic(t *testing.T) {
	e := New()
	metrics := healthyMetrics()
	metrics.MemoryUsageFraction = 0.95
	params := config.Default()

	first := e.Evaluate(metrics, params)
	second := e.Evaluate(metrics, params)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate() not deterministic: %v vs %v", first, second)
	}
}

func TestAdvice_CategoriesOrder(t *testing.T) {
	advice := Advice{
		CategoryThroughputLow: {"a"},
		CategoryMemoryHigh:    {"b"},
		CategoryLatencyHigh:   {"c"},
	}

	want := []Category{CategoryMemoryHigh, CategoryLatencyHigh, CategoryThroughputLow}
	if got := advice.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Thresholds)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(th *Thresholds) {},
		},
		{
			name:    "memory low at zero",
			mutate:  func(th *Thresholds) { th.MemoryLow = 0 },
			wantErr: true,
		},
		{
			name:    "memory high above one",
			mutate:  func(th *Thresholds) { th.MemoryHigh = 1.1 },
			wantErr: true,
		},
		{
			name:    "low not below high",
			mutate:  func(th *Thresholds) { th.MemoryLow = 0.9 },
			wantErr: true,
		},
		{
			name:    "latency bound zero",
			mutate:  func(th *Thresholds) { th.FirstTokenLatencyHigh = 0 },
			wantErr: true,
		},
		{
			name:    "negative throughput bound",
			mutate:  func(th *Thresholds) { th.TokenThroughputLow = -1 },
			wantErr: true,
		},
		{
			name:   "zero throughput bound is valid",
			mutate: func(th *Thresholds) { th.TokenThroughputLow = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultThresholds()
			tt.mutate(&th)
			err := th.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range renderOrder {
		if !c.IsValid() {
			t.Errorf("IsValid() = false for %s", c)
		}
	}
	if Category("memory_medium").IsValid() {
		t.Error("IsValid() = true for unknown category")
	}
}
