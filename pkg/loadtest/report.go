// Copyright (c) 2025, Neurotune Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loadtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/snapshotter"
)

// RawResultsFile is the name of the per-run CSV written next to a report.
const RawResultsFile = "raw_results.csv"

// CategorySummary aggregates the runs of one case category.
type CategorySummary struct {
	// Category is the case group summarized.
	Category Category `json:"category" yaml:"category"`

	// Runs is the number of runs in the group.
	Runs int `json:"runs" yaml:"runs"`

	// Successes is the number of successful runs.
	Successes int `json:"successes" yaml:"successes"`

	// SuccessRate is successes over runs, 0-1.
	SuccessRate float64 `json:"success_rate" yaml:"success_rate"`

	// Latency summarizes wall time across all runs, failures included.
	Latency Stats `json:"latency_seconds" yaml:"latency_seconds"`

	// OutputWords summarizes completion word counts over successful runs.
	OutputWords Stats `json:"output_words" yaml:"output_words"`
}

// Summary aggregates the whole suite.
type Summary struct {
	// Runs is the total number of runs.
	Runs int `json:"runs" yaml:"runs"`

	// Successes is the number of successful runs.
	Successes int `json:"successes" yaml:"successes"`

	// SuccessRate is successes over runs, 0-1.
	SuccessRate float64 `json:"success_rate" yaml:"success_rate"`

	// MeanLatencySeconds is the mean wall time across all runs.
	MeanLatencySeconds float64 `json:"mean_latency_seconds" yaml:"mean_latency_seconds"`

	// MeanOutputWords is the mean word count over successful runs.
	MeanOutputWords float64 `json:"mean_output_words" yaml:"mean_output_words"`
}

// Report is the serialized artifact of one load test suite invocation.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// RunID identifies the suite invocation.
	RunID string `json:"run_id" yaml:"run_id"`

	// Model is the model the requests were issued against.
	Model string `json:"model" yaml:"model"`

	// Parameters are the serving parameters the requests were shaped by.
	Parameters config.ParameterSet `json:"parameters" yaml:"parameters"`

	// Categories summarizes each case group, in suite order.
	Categories []CategorySummary `json:"categories" yaml:"categories"`

	// Summary aggregates the whole suite.
	Summary Summary `json:"summary" yaml:"summary"`

	// Results lists every individual run.
	Results []Result `json:"results" yaml:"results"`
}

// Aggregate computes per-category summaries and the overall summary.
// Categories with no runs are omitted. Latency statistics include failed
// runs, word statistics only successful ones.
func Aggregate(results []Result) ([]CategorySummary, Summary) {
	byCategory := make(map[Category][]Result, len(categoryOrder))
	for _, res := range results {
		byCategory[res.Category] = append(byCategory[res.Category], res)
	}

	categories := make([]CategorySummary, 0, len(byCategory))
	for _, cat := range categoryOrder {
		group, ok := byCategory[cat]
		if !ok {
			continue
		}
		categories = append(categories, summarizeGroup(cat, group))
	}

	var overall Summary
	overall.Runs = len(results)
	var latencySum float64
	var words []float64
	for _, res := range results {
		latencySum += res.LatencySeconds
		if res.Success {
			overall.Successes++
			words = append(words, float64(res.OutputWords))
		}
	}
	if overall.Runs > 0 {
		overall.SuccessRate = float64(overall.Successes) / float64(overall.Runs)
		overall.MeanLatencySeconds = latencySum / float64(overall.Runs)
	}
	overall.MeanOutputWords = Summarize(words).Mean

	return categories, overall
}

func summarizeGroup(cat Category, group []Result) CategorySummary {
	s := CategorySummary{Category: cat, Runs: len(group)}

	latencies := make([]float64, 0, len(group))
	var words []float64
	for _, res := range group {
		latencies = append(latencies, res.LatencySeconds)
		if res.Success {
			s.Successes++
			words = append(words, float64(res.OutputWords))
		}
	}

	s.SuccessRate = float64(s.Successes) / float64(s.Runs)
	s.Latency = Summarize(latencies)
	s.OutputWords = Summarize(words)
	return s
}

// BuildReport aggregates the results into a versioned artifact.
func BuildReport(runID, version, model string, params config.ParameterSet, results []Result) *Report {
	categories, summary := Aggregate(results)

	r := &Report{
		RunID:      runID,
		Model:      model,
		Parameters: params,
		Categories: categories,
		Summary:    summary,
		Results:    results,
	}
	r.Init(header.KindLoadTestReport, snapshotter.FullAPIVersion, version)
	r.Metadata["run-id"] = runID

	return r
}

// WriteRawCSV writes one row per run.
func WriteRawCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"run_id", "case", "category", "run", "success", "latency_seconds", "output_words", "error"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, res := range results {
		row := []string{
			res.RunID,
			res.Case,
			res.Category.String(),
			strconv.Itoa(res.Run),
			strconv.FormatBool(res.Success),
			strconv.FormatFloat(res.LatencySeconds, 'f', 6, 64),
			strconv.Itoa(res.OutputWords),
			res.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveRawCSV writes the report's raw results under dir in a subdirectory
// named by the run id and returns the file path.
func SaveRawCSV(dir string, report *Report) (string, error) {
	outDir := filepath.Join(dir, report.RunID)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	path := filepath.Join(outDir, RawResultsFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating results file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := WriteRawCSV(f, report.Results); err != nil {
		return "", err
	}
	return path, nil
}
