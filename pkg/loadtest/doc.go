// Package loadtest drives a categorized prompt suite against a vLLM
// completions endpoint and reports latency and output statistics.
//
// The suite has eight built-in cases in four categories: short factual
// prompts, medium code and math prompts, long essay prompts, and two
// special cases that stress the context window and multi-turn structure.
// Each case runs a fixed number of times, paced by a rate limiter so the
// suite measures serving behavior rather than queueing behavior.
//
// A typical invocation:
//
//	runner := loadtest.NewRunner(
//	    loadtest.WithEndpoint(settings.Endpoint),
//	    loadtest.WithModel(settings.Model),
//	    loadtest.WithParameters(params),
//	)
//
//	report, err := runner.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	path, err := loadtest.SaveRawCSV(settings.ResultsDir, report)
//
// Request failures are recorded in the results and summarized as the
// success rate; they never abort the suite. Only context cancellation
// stops a run early.
//
// The Report artifact carries per-category summaries (success rate,
// latency mean/std/min/max, output word counts) alongside every raw run,
// so the CSV and any serialized form of the report always agree.
package loadtest
