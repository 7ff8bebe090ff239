package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/serializer"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Responses larger than this are treated as malformed.
const maxResponseBytes = 4 << 20

// CompletionRequest is the payload sent to the completions endpoint.
type CompletionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
}

// CompletionResponse is the subset of the completions response the runner
// reads.
type CompletionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Result records one run of one case.
type Result struct {
	// RunID identifies the suite invocation the run belongs to.
	RunID string `json:"run_id" yaml:"run_id"`

	// Case is the case name.
	Case string `json:"case" yaml:"case"`

	// Category is the case category.
	Category Category `json:"category" yaml:"category"`

	// Run is the 1-based run number within the case.
	Run int `json:"run" yaml:"run"`

	// Success reports whether the request completed with a usable choice.
	Success bool `json:"success" yaml:"success"`

	// LatencySeconds is the wall time of the request including the
	// response body.
	LatencySeconds float64 `json:"latency_seconds" yaml:"latency_seconds"`

	// OutputWords is the whitespace-separated word count of the completion
	// text. Zero on failure.
	OutputWords int `json:"output_words" yaml:"output_words"`

	// Error describes the failure. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Runner drives the prompt suite against a vLLM completions endpoint.
type Runner struct {
	endpoint string
	model    string
	version  string
	runs     int
	rps      float64
	timeout  time.Duration
	params   config.ParameterSet
	cases    []Case
	limiter  *rate.Limiter
	client   *http.Client
}

// RunnerOption is a functional option for configuring the Runner.
type RunnerOption func(*Runner)

// WithEndpoint sets the base URL of the vLLM server.
func WithEndpoint(endpoint string) RunnerOption {
	return func(r *Runner) {
		r.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithModel sets the model name sent with each request.
func WithModel(model string) RunnerOption {
	return func(r *Runner) {
		r.model = model
	}
}

// WithVersion sets the tool version stamped on the report.
func WithVersion(version string) RunnerOption {
	return func(r *Runner) {
		r.version = version
	}
}

// WithRuns sets how many times each case is executed.
func WithRuns(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.runs = n
		}
	}
}

// WithRate sets the request pacing in requests per second.
func WithRate(rps float64) RunnerOption {
	return func(r *Runner) {
		if rps > 0 {
			r.rps = rps
		}
	}
}

// WithRequestTimeout bounds a single completion request.
func WithRequestTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithParameters sets the serving parameters the requests are shaped by:
// sampling values are sent verbatim, max_model_len sizes the completion
// budget.
func WithParameters(p config.ParameterSet) RunnerOption {
	return func(r *Runner) {
		r.params = p
	}
}

// WithCases replaces the built-in prompt suite.
func WithCases(cases []Case) RunnerOption {
	return func(r *Runner) {
		if len(cases) > 0 {
			r.cases = cases
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) RunnerOption {
	return func(r *Runner) {
		r.client = c
	}
}

// NewRunner creates a new Runner with the provided options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		endpoint: config.DefaultEndpoint,
		model:    config.DefaultModel,
		runs:     defaults.LoadTestRunsPerCase,
		rps:      defaults.LoadTestRequestsPerSecond,
		timeout:  defaults.HTTPClientTimeout,
		params:   config.Default(),
		cases:    Cases(),
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	if r.limiter == nil {
		r.limiter = rate.NewLimiter(rate.Limit(r.rps), 1)
	}
	if r.client == nil {
		r.client = serializer.NewHttpReader(serializer.WithTotalTimeout(r.timeout)).Client
	}

	return r
}

// Run executes every case in the suite sequentially, pacing requests with
// the rate limiter, and returns the aggregated report. Individual request
// failures are recorded in the results; only context cancellation stops
// the suite early.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.New().String()

	slog.Info("starting load test suite",
		slog.String("run_id", runID),
		slog.String("endpoint", r.endpoint),
		slog.Int("cases", len(r.cases)),
		slog.Int("runs_per_case", r.runs))

	results := make([]Result, 0, len(r.cases)*r.runs)
	for _, c := range r.cases {
		slog.Info("testing case",
			slog.String("name", c.Name),
			slog.String("category", c.Category.String()))

		for run := 1; run <= r.runs; run++ {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("load test interrupted: %w", err)
			}

			res := r.runOnce(ctx, c, run)
			res.RunID = runID
			results = append(results, res)

			if res.Success {
				slog.Info("run complete",
					slog.Int("run", run),
					slog.Float64("latency_seconds", res.LatencySeconds),
					slog.Int("output_words", res.OutputWords))
			} else {
				slog.Error("run failed",
					slog.Int("run", run),
					slog.String("error", res.Error))
			}
		}
	}

	return BuildReport(runID, r.version, r.model, r.params, results), nil
}

// runOnce issues one completion request and records the outcome. Latency
// covers the full exchange including the response body.
func (r *Runner) runOnce(ctx context.Context, c Case, run int) Result {
	res := Result{Case: c.Name, Category: c.Category, Run: run}

	body, err := json.Marshal(CompletionRequest{
		Model:       r.model,
		Prompt:      c.Prompt,
		Temperature: r.params.Temperature,
		MaxTokens:   c.MaxTokens(r.params.MaxModelLen),
		TopP:        r.params.TopP,
	})
	if err != nil {
		res.Error = fmt.Sprintf("encoding request: %v", err)
		return res
	}

	rctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(rctx, http.MethodPost, r.endpoint+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		res.Error = fmt.Sprintf("building request: %v", err)
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		res.LatencySeconds = time.Since(start).Seconds()
		res.Error = err.Error()
		requestsTotal.WithLabelValues("error").Inc()
		return res
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	res.LatencySeconds = time.Since(start).Seconds()
	requestDuration.Observe(res.LatencySeconds)
	if err != nil {
		res.Error = fmt.Sprintf("reading response: %v", err)
		requestsTotal.WithLabelValues("error").Inc()
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
		requestsTotal.WithLabelValues("error").Inc()
		return res
	}

	var completion CompletionResponse
	if err := json.Unmarshal(payload, &completion); err != nil {
		res.Error = fmt.Sprintf("decoding response: %v", err)
		requestsTotal.WithLabelValues("error").Inc()
		return res
	}
	if len(completion.Choices) == 0 {
		res.Error = "response contained no choices"
		requestsTotal.WithLabelValues("error").Inc()
		return res
	}

	res.Success = true
	res.OutputWords = len(strings.Fields(completion.Choices[0].Text))
	requestsTotal.WithLabelValues("success").Inc()
	return res
}
