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

	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/preflight"
	"github.com/neurotune/neurotune/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify this host is ready to serve models",
		Description: `Run the host readiness checks for serving large models on Neuron:

  host.memory        - at least 16GB of system memory
  host.disk          - at least 200GB free on the root filesystem
  binary.neuron-ls   - Neuron device inventory tool on PATH
  binary.docker      - container runtime on PATH
  binary.git         - source and model fetching on PATH
  binary.neuron-top  - live device monitoring on PATH (optional)
  service.docker     - docker.service active per systemd

A failed check is a finding, not an error: the command still exits
zero so the result can be serialized and inspected. Checks whose
outcome cannot be determined (an optional binary, a host without
systemd) are recorded as skipped.

# Examples

Check and print the result:
  neurotune check

Fail the command if any check fails (useful for provisioning scripts):
  neurotune check --fail-on-error

Save the result for a fleet inventory:
  neurotune check --output ready.yaml --format yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any readiness check fails",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			failOnError := cmd.Bool("fail-on-error")

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICheckTimeout)
			defer cancel()

			// Create runner
			runner := preflight.New(
				preflight.WithVersion(version),
			)

			result, err := runner.Run(ctx)
			if err != nil {
				return fmt.Errorf("readiness checks could not run: %w", err)
			}

			// Serialize output
			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize check result: %w", err)
			}

			slog.Info("readiness checks completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			// Check if we should fail on findings
			if failOnError && result.Failed() {
				return fmt.Errorf("host not ready: %d check(s) failed", result.Summary.Failed)
			}

			return nil
		},
	}
}
