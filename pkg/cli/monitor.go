/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/monitor"
	"github.com/neurotune/neurotune/pkg/recommender"
	"github.com/neurotune/neurotune/pkg/vllm"
)

func monitorCmd() *cli.Command {
	return &cli.Command{
		Name:                  "monitor",
		EnableShellCompletion: true,
		Usage:                 "Watch the vLLM server and suggest parameter changes",
		Description: `Run the tuning feedback loop against a live vLLM server. Every tick the
monitor snapshots the accelerators, scrapes the server's metrics
endpoint, derives request and token rates from the counter deltas, and
evaluates the runtime against the current serving parameters. Matching
rules render as parameter advice in a plain-text status block.

The loop tolerates a missing server: scrape failures degrade the tick
with a note instead of stopping it, so the monitor can be started
before vLLM is up. Type q or quit (or send SIGINT) to stop.

# Rule Thresholds

Rule bounds can be overridden per deployment with --tuning:

  thresholds:
    memory_high: 0.95
    first_token_latency_high: 3.0

# Examples

Watch with the default two second interval:
  neurotune monitor

One status block for scripting:
  neurotune monitor --once

Expose the monitor's own Prometheus metrics while watching:
  neurotune monitor --metrics-addr :9090`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Delay between monitor ticks",
				Sources: cli.EnvVars(config.EnvInterval),
				Value:   defaults.MonitorInterval,
			},
			&cli.BoolFlag{
				Name:  "once",
				Usage: "Render a single status block and exit",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Address to expose Prometheus metrics on (e.g. :9090); empty disables",
			},
			tuningFlag,
			paramsDirFlag,
			endpointFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tuning, err := loadTuning(cmd)
			if err != nil {
				return err
			}
			thresholds, err := tuning.ResolveThresholds()
			if err != nil {
				return err
			}

			settings := config.Load()
			settings.Endpoint = cmd.String("endpoint")

			m := monitor.New(
				monitor.WithVersion(version),
				monitor.WithInterval(cmd.Duration("interval")),
				monitor.WithOnce(cmd.Bool("once")),
				monitor.WithMetricsAddress(cmd.String("metrics-addr")),
				monitor.WithQuitReader(os.Stdin),
				monitor.WithScraper(vllm.NewClient(settings.MetricsURL())),
				monitor.WithParameterSource(config.NewStore(cmd.String("params-dir"))),
				monitor.WithEngine(recommender.New(
					recommender.WithVersion(version),
					recommender.WithThresholds(thresholds),
				)),
			)

			return m.Run(ctx)
		},
	}
}
