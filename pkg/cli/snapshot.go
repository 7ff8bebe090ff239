/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/collector"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/serializer"
	"github.com/neurotune/neurotune/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a compute resource snapshot of this host",
		Description: `Capture a snapshot of the compute resources available on this host:
  - Physical CPU cores
  - System memory, total and available
  - Neuron accelerator devices with core counts and device memory

The snapshot is the input to the advise command. On hosts without Neuron
tooling the snapshot degrades to CPU and memory with a note instead of
failing, so the same command works on any Linux machine.

The snapshot can be output in JSON, YAML, or table format.

# Examples

Print the snapshot to stdout:
  neurotune snapshot

Save the snapshot for a later advise run:
  neurotune snapshot --output snapshot.json

Human-readable table:
  neurotune snapshot --format table`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
			defer cancel()

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			// Build snapshotter configuration
			ns := snapshotter.NodeSnapshotter{
				Version:    version,
				Factory:    collector.NewDefaultFactory(),
				Serializer: ser,
			}

			return ns.Measure(ctx)
		},
	}
}
