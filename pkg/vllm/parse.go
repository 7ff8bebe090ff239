package vllm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Series names extracted from the exposition body, matched with and without
// the "vllm:" prefix.
const (
	seriesFirstTokenSum    = "time_to_first_token_seconds_sum"
	seriesPerTokenSum      = "time_per_output_token_seconds_sum"
	seriesGenerationTokens = "generation_tokens_total"
	seriesRequestSuccess   = "request_success_total"
	seriesCacheUsage       = "gpu_cache_usage_perc"
)

// maxLineSize bounds a single exposition line. Label-heavy vLLM series stay
// well under this.
const maxLineSize = 1024 * 1024

// ParseCounters scans a Prometheus text exposition body line by line and
// extracts the series this tool consumes. Comment and blank lines are
// skipped, malformed lines are debug-logged and skipped, and counter values
// accumulate across label sets while gauges take the last sample seen.
// NaN and infinite values are sanitized to zero.
func ParseCounters(r io.Reader) (RawCounters, error) {
	var raw RawCounters

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := parseSampleLine(line)
		if !ok {
			slog.Debug("skipping malformed metric line", slog.String("line", line))
			continue
		}

		switch strings.TrimPrefix(name, "vllm:") {
		case seriesFirstTokenSum:
			raw.FirstTokenSecondsSum += value
		case seriesPerTokenSum:
			raw.PerTokenSecondsSum += value
		case seriesGenerationTokens:
			raw.GenerationTokens += value
		case seriesRequestSuccess:
			raw.SuccessfulRequests += value
		case seriesCacheUsage:
			raw.CacheUsageFraction = value
		}
	}

	if err := scanner.Err(); err != nil {
		return RawCounters{}, fmt.Errorf("failed to scan metrics body: %w", err)
	}

	return raw, nil
}

// parseSampleLine splits a sample line at the last space into a name part
// and a value, stripping any {...} label block from the name.
func parseSampleLine(line string) (string, float64, bool) {
	lastSpace := strings.LastIndex(line, " ")
	if lastSpace == -1 {
		return "", 0, false
	}

	valueStr := strings.TrimSpace(line[lastSpace+1:])
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return "", 0, false
	}

	name := strings.TrimSpace(line[:lastSpace])
	if idx := strings.Index(name, "{"); idx != -1 {
		name = name[:idx]
	}
	if name == "" {
		return "", 0, false
	}

	return name, sanitizeValue(value), true
}

func sanitizeValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
