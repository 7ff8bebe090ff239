/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/serializer"
)

// supportedParamKeys lists the keys config set accepts, for error messages
// and help text.
const supportedParamKeys = "tensor_parallel_size, block_size, max_num_seqs, max_model_len, temperature, top_p"

func configCmd() *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Show and edit the stored serving parameters",
		Description: `Inspect and update the serving parameters persisted under the parameter
directory. The current set shapes monitor advice and load test requests;
the recommended set is whatever the last advise run produced.`,
		Commands: []*cli.Command{
			configShowCmd(),
			configSetCmd(),
		},
	}
}

func configShowCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Print the stored serving parameters",
		Description: `Print the current serving parameter set. When nothing has been saved
yet the defaults are shown. Use --recommended to print the advisor's
last recommendation instead.

# Examples

Current parameters as JSON:
  neurotune config show

Last recommendation as a table:
  neurotune config show --recommended --format table`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "recommended",
				Usage: "Show the recommended parameter set instead of the current one",
			},
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

			var (
				params config.ParameterSet
				found  bool
			)
			if cmd.Bool("recommended") {
				params, found, err = store.LoadRecommended()
			} else {
				params, found, err = store.LoadCurrent()
			}
			if err != nil {
				return fmt.Errorf("failed to load parameters: %w", err)
			}
			if !found {
				slog.Info("no parameters saved yet, showing defaults")
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, params)
		},
	}
}

func configSetCmd() *cli.Command {
	return &cli.Command{
		Name:                  "set",
		EnableShellCompletion: true,
		Usage:                 "Update serving parameters with key=value pairs",
		ArgsUsage:             "key=value [key=value ...]",
		Description: fmt.Sprintf(`Update one or more stored serving parameters. The pairs are applied to
the current set as a patch, the merged result is validated, and nothing
is written when validation fails.

Supported keys:
  %s

# Examples

Raise the context length:
  neurotune config set max_model_len=4096

Several parameters at once:
  neurotune config set max_num_seqs=8 block_size=16`, supportedParamKeys),
		Flags: []cli.Flag{
			paramsDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("no parameters given, expected key=value pairs")
			}

			patch, err := buildPatchFromArgs(args)
			if err != nil {
				return err
			}

			store := config.NewStore(cmd.String("params-dir"))
			merged, err := store.Update(patch)
			if err != nil {
				return fmt.Errorf("failed to update parameters: %w", err)
			}

			slog.Info("parameters updated", "path", store.CurrentPath())

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, merged)
		},
	}
}

// buildPatchFromArgs converts key=value arguments into a parameter patch.
func buildPatchFromArgs(args []string) (config.Patch, error) {
	var patch config.Patch
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return config.Patch{}, fmt.Errorf("invalid argument %q, expected key=value", arg)
		}
		if err := setPatchField(&patch, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return config.Patch{}, err
		}
	}
	return patch, nil
}

// setPatchField parses the value and assigns it to the named parameter.
func setPatchField(patch *config.Patch, key, value string) error {
	switch key {
	case "tensor_parallel_size":
		return setIntField(&patch.TensorParallelSize, key, value)
	case "block_size":
		return setIntField(&patch.BlockSize, key, value)
	case "max_num_seqs":
		return setIntField(&patch.MaxNumSeqs, key, value)
	case "max_model_len":
		return setIntField(&patch.MaxModelLen, key, value)
	case "temperature":
		return setFloatField(&patch.Temperature, key, value)
	case "top_p":
		return setFloatField(&patch.TopP, key, value)
	default:
		return fmt.Errorf("unknown parameter %q, supported keys: %s", key, supportedParamKeys)
	}
}

func setIntField(dst **int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not an integer", key, value)
	}
	*dst = &n
	return nil
}

func setFloatField(dst **float64, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not a number", key, value)
	}
	*dst = &f
	return nil
}
