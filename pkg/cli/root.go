/*
Copyright © 2025 Neurotune Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/neurotune/neurotune/pkg/logging"
)

const (
	name           = "neurotune"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Size, verify, and tune vLLM serving on AWS Neuron hosts",
		Description: fmt.Sprintf(`neurotune - vLLM serving parameter advisor for AWS Neuron

Version: %s
Commit:  %s
Built:   %s

Tooling to size, verify, and tune a vLLM deployment on Inferentia hosts:

check    - verifies the host meets the serving requirements.
snapshot - captures the host's compute resources including Neuron devices.
advise   - derives recommended serving parameters from a snapshot.
config   - shows and edits the stored serving parameters.
monitor  - watches the running server and suggests parameter changes.
loadtest - drives a prompt suite against the server and reports latency.`,
			version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("NEUROTUNE_LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			snapshotCmd(),
			adviseCmd(),
			configCmd(),
			monitorCmd(),
			loadtestCmd(),
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog after flag parsing so overrides like
// --log-level take effect before any command executes.
func initLogger(logLevel string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}
