/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/loadtest"
	"github.com/neurotune/neurotune/pkg/serializer"
)

func loadtestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "loadtest",
		EnableShellCompletion: true,
		Usage:                 "Drive the prompt suite against the vLLM server",
		Description: `Run the built-in prompt suite against a vLLM completions endpoint and
report latency and output statistics per prompt category. Requests are
paced with a rate limiter and shaped by the current serving parameters:
sampling values are sent verbatim and max_model_len sizes the
completion budget.

Failed requests are recorded in the report rather than stopping the
suite; only interruption stops it early. The aggregated report is
serialized to the output and the raw per-request results are saved as
CSV under the results directory, keyed by run id.

# Examples

Default suite, three runs per case:
  neurotune loadtest

Longer soak at a higher request rate:
  neurotune loadtest --runs 10 --rate 2.0

Report to file in YAML:
  neurotune loadtest --output report.yaml --format yaml`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "runs",
				Usage: "Number of runs per prompt case",
				Value: defaults.LoadTestRunsPerCase,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Request pacing in requests per second",
				Value: defaults.LoadTestRequestsPerSecond,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for a single completion request",
				Value: defaults.HTTPClientTimeout,
			},
			&cli.StringFlag{
				Name:    "model",
				Usage:   "Model name sent with each request",
				Sources: cli.EnvVars(config.EnvModel),
				Value:   config.DefaultModel,
			},
			&cli.StringFlag{
				Name:    "results-dir",
				Usage:   "Directory where raw per-request results are saved",
				Sources: cli.EnvVars(config.EnvResultsDir),
				Value:   config.DefaultResultsDir,
			},
			endpointFlag,
			paramsDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store := config.NewStore(cmd.String("params-dir"))
			params, found, err := store.LoadCurrent()
			if err != nil {
				return fmt.Errorf("failed to load current parameters: %w", err)
			}
			if !found {
				slog.Info("no current parameters saved, running with defaults")
			}

			runner := loadtest.NewRunner(
				loadtest.WithEndpoint(cmd.String("endpoint")),
				loadtest.WithModel(cmd.String("model")),
				loadtest.WithVersion(version),
				loadtest.WithRuns(int(cmd.Int("runs"))),
				loadtest.WithRate(cmd.Float("rate")),
				loadtest.WithRequestTimeout(cmd.Duration("timeout")),
				loadtest.WithParameters(params),
			)

			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			// Serialize output
			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize load test report: %w", err)
			}

			rawPath, err := loadtest.SaveRawCSV(cmd.String("results-dir"), report)
			if err != nil {
				return fmt.Errorf("failed to save raw results: %w", err)
			}

			slog.Info("load test completed",
				"run_id", report.RunID,
				"runs", report.Summary.Runs,
				"successes", report.Summary.Successes,
				"success_rate", report.Summary.SuccessRate,
				"raw_results", rawPath)

			return nil
		},
	}
}
