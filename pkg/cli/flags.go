/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/advisor"
	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/serializer"
)

// defaultServePort is assumed when the endpoint URL does not name a port.
const defaultServePort = 8000

// Flags shared by more than one subcommand.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	paramsDirFlag = &cli.StringFlag{
		Name:    "params-dir",
		Usage:   "Directory holding the persisted parameter files",
		Sources: cli.EnvVars(config.EnvConfigDir),
		Value:   config.DefaultConfigDir,
	}

	endpointFlag = &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "Base URL of the vLLM server",
		Sources: cli.EnvVars(config.EnvEndpoint),
		Value:   config.DefaultEndpoint,
	}

	tuningFlag = &cli.StringFlag{
		Name:  "tuning",
		Usage: "Path to a tuning file overriding sizing tables and rule thresholds",
	}
)

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(c *cli.Command) (serializer.Format, error) {
	f := serializer.Format(c.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadTuning reads the tuning file named by the tuning flag. Returns nil
// when the flag is unset; the resolve methods treat nil as all-defaults.
func loadTuning(cmd *cli.Command) (*advisor.Tuning, error) {
	path := cmd.String("tuning")
	if path == "" {
		return nil, nil
	}
	return advisor.LoadTuning(path)
}

// closeSerializer releases the serializer's file handle when it has one.
func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}

// endpointPort extracts the TCP port from the endpoint URL, falling back
// to the default vLLM port when none is named.
func endpointPort(endpoint string) int {
	u, err := url.Parse(endpoint)
	if err != nil {
		return defaultServePort
	}
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			return n
		}
	}
	return defaultServePort
}
