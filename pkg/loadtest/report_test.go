package loadtest

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/snapshotter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	return []Result{
		{RunID: "r1", Case: "Basic Math", Category: CategoryShort, Run: 1, Success: true, LatencySeconds: 1.0, OutputWords: 20},
		{RunID: "r1", Case: "Basic Math", Category: CategoryShort, Run: 2, Success: true, LatencySeconds: 3.0, OutputWords: 40},
		{RunID: "r1", Case: "Essay Generation", Category: CategoryLong, Run: 1, Success: false, LatencySeconds: 30.0, Error: "HTTP 500: boom"},
		{RunID: "r1", Case: "Essay Generation", Category: CategoryLong, Run: 2, Success: true, LatencySeconds: 10.0, OutputWords: 300},
	}
}

func TestAggregate(t *testing.T) {
	categories, summary := Aggregate(sampleResults())

	require.Len(t, categories, 2)

	short := categories[0]
	assert.Equal(t, CategoryShort, short.Category)
	assert.Equal(t, 2, short.Runs)
	assert.Equal(t, 2, short.Successes)
	assert.Equal(t, 1.0, short.SuccessRate)
	assert.Equal(t, 2.0, short.Latency.Mean)
	assert.Equal(t, 1.0, short.Latency.Min)
	assert.Equal(t, 3.0, short.Latency.Max)
	assert.Equal(t, 30.0, short.OutputWords.Mean)

	long := categories[1]
	assert.Equal(t, CategoryLong, long.Category)
	assert.Equal(t, 2, long.Runs)
	assert.Equal(t, 1, long.Successes)
	assert.Equal(t, 0.5, long.SuccessRate)
	// Failed runs still count toward latency.
	assert.Equal(t, 20.0, long.Latency.Mean)
	// Word stats cover successful runs only.
	assert.Equal(t, 300.0, long.OutputWords.Mean)
	assert.Equal(t, 0.0, long.OutputWords.Std)

	assert.Equal(t, 4, summary.Runs)
	assert.Equal(t, 3, summary.Successes)
	assert.Equal(t, 0.75, summary.SuccessRate)
	assert.Equal(t, 11.0, summary.MeanLatencySeconds)
	assert.Equal(t, 120.0, summary.MeanOutputWords)
}

func TestAggregateEmpty(t *testing.T) {
	categories, summary := Aggregate(nil)
	assert.Empty(t, categories)
	assert.Equal(t, Summary{}, summary)
}

func TestAggregateCategoryOrder(t *testing.T) {
	results := []Result{
		{Category: CategorySpecial, Success: true},
		{Category: CategoryShort, Success: true},
		{Category: CategoryLong, Success: true},
		{Category: CategoryMedium, Success: true},
	}

	categories, _ := Aggregate(results)
	require.Len(t, categories, 4)
	assert.Equal(t, CategoryShort, categories[0].Category)
	assert.Equal(t, CategoryMedium, categories[1].Category)
	assert.Equal(t, CategoryLong, categories[2].Category)
	assert.Equal(t, CategorySpecial, categories[3].Category)
}

func TestBuildReport(t *testing.T) {
	params := config.Default()
	report := BuildReport("run-42", "v1.0.0", "test-model", params, sampleResults())

	assert.Equal(t, header.KindLoadTestReport, report.Kind)
	assert.Equal(t, snapshotter.FullAPIVersion, report.APIVersion)
	assert.Equal(t, "v1.0.0", report.Metadata["version"])
	assert.Equal(t, "run-42", report.Metadata["run-id"])
	assert.Equal(t, "run-42", report.RunID)
	assert.Equal(t, "test-model", report.Model)
	assert.Equal(t, params, report.Parameters)
	assert.Len(t, report.Results, 4)
	assert.Equal(t, 0.75, report.Summary.SuccessRate)
}

func TestWriteRawCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRawCSV(&buf, sampleResults()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"run_id", "case", "category", "run", "success", "latency_seconds", "output_words", "error"}, rows[0])
	assert.Equal(t, "Basic Math", rows[1][1])
	assert.Equal(t, "short", rows[1][2])
	assert.Equal(t, "true", rows[1][4])
	assert.Equal(t, "HTTP 500: boom", rows[3][7])
}

func TestSaveRawCSV(t *testing.T) {
	dir := t.TempDir()
	report := BuildReport("run-7", "v1.0.0", "m", config.Default(), sampleResults())

	path, err := SaveRawCSV(dir, report)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run-7", RawResultsFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Basic Math")
}
