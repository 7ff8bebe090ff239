/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/advisor"
	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/serializer"
	"github.com/neurotune/neurotune/pkg/snapshotter"
)

func adviseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "advise",
		EnableShellCompletion: true,
		Usage:                 "Recommend vLLM serving parameters for this host",
		Description: `Derive recommended vLLM serving parameters from the host's compute
resources. Tensor parallelism follows the total NeuronCore count; block
size, sequence count, and context length follow the total accelerator
memory. A host without accelerators resolves to the most conservative
tier of every sizing table.

The recommendation is saved as recommended_params.json under the
parameter directory and serialized to the output. The current parameter
set used by monitor and loadtest is only touched with --apply.

# Tuning Files

Sizing tables can be overridden per deployment with --tuning. The file
names only the tables it changes; everything else keeps its default:

  tables:
    max_model_len:
      - min: 256
        value: 16384
      - min: 64
        value: 8192
      - min: 0
        value: 4096

# Examples

Probe the host and print the recommendation:
  neurotune advise

Advise from a previously saved snapshot:
  neurotune advise --snapshot snapshot.json

Adopt the recommendation as the current parameter set:
  neurotune advise --apply

Show the resulting server command line:
  neurotune advise --print-args`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "snapshot",
				Aliases: []string{"s"},
				Usage: `Path to a previously captured resource snapshot to advise from.
	When omitted the host is probed directly.`,
			},
			&cli.BoolFlag{
				Name:  "apply",
				Usage: "Also save the recommendation as the current parameter set",
			},
			&cli.BoolFlag{
				Name:  "print-args",
				Usage: "Print the recommended parameters as vllm serve arguments",
			},
			tuningFlag,
			paramsDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			tuning, err := loadTuning(cmd)
			if err != nil {
				return err
			}
			tables, err := tuning.ResolveTables()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
			defer cancel()

			// Load or capture the snapshot
			var snap *snapshotter.Snapshot
			if path := cmd.String("snapshot"); path != "" {
				snap, err = serializer.FromFile[snapshotter.Snapshot](path)
				if err != nil {
					return fmt.Errorf("failed to load snapshot from %q: %w", path, err)
				}
				// Hand-written snapshots may omit the header; anything
				// else has to carry the right kind.
				if snap.Kind != "" && snap.Kind != header.KindResourceSnapshot {
					return fmt.Errorf("file %q holds a %s artifact, expected %s",
						path, snap.Kind, header.KindResourceSnapshot)
				}
			} else {
				ns := &snapshotter.NodeSnapshotter{Version: version}
				snap, err = ns.Capture(ctx)
				if err != nil {
					return fmt.Errorf("failed to capture resource snapshot: %w", err)
				}
			}

			// Create advisor
			adv := advisor.New(
				advisor.WithVersion(version),
				advisor.WithTables(tables),
			)

			rec, err := adv.BuildRecommendation(ctx, snap)
			if err != nil {
				return fmt.Errorf("failed to build recommendation: %w", err)
			}

			store := config.NewStore(cmd.String("params-dir"))
			if err := store.SaveRecommended(rec.Parameters); err != nil {
				return fmt.Errorf("failed to save recommended parameters: %w", err)
			}

			if cmd.Bool("apply") {
				if err := store.SaveCurrent(rec.Parameters); err != nil {
					return fmt.Errorf("failed to apply recommended parameters: %w", err)
				}
			}

			// Serialize output
			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, rec); err != nil {
				return fmt.Errorf("failed to serialize recommendation: %w", err)
			}

			if cmd.Bool("print-args") {
				settings := config.Load()
				args := rec.Parameters.VLLMArgs(settings.Model, endpointPort(settings.Endpoint))
				fmt.Printf("\nvllm serve %s\n", strings.Join(args, " "))
			}

			slog.Info("recommendation complete",
				"accelerators", rec.Inputs.AcceleratorCount,
				"total_cores", rec.Inputs.TotalCoreCount,
				"total_memory_gib", rec.Inputs.TotalAcceleratorMemoryGiB,
				"applied", cmd.Bool("apply"),
				"path", store.RecommendedPath())

			return nil
		},
	}
}
