/*
Copyright © 2025 NVIDIA Corporation
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

	"github.com/NVIDIA/nestlang/pkg/logging"
)

const (
	name           = "nestlint"
	versionDefault = "dev"
	envPrefix      = "NESTLINT_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// envVars maps keys to NESTLINT_-prefixed environment variables.
func envVars(keys ...string) cli.ValueSourceChain {
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, envPrefix+k)
	}
	return cli.EnvVars(prefixed...)
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate and render NestLang schema documents",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `nestlint checks NestLang documents line by line and reports every
syntax, type, and description error with its line number.

Documents can be read from files, stdin (-), HTTP/HTTPS URLs, or
Kubernetes ConfigMaps (cm://namespace/name[/key]).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(envPrefix+"LOG_LEVEL", logging.EnvLogLevel),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "shorthand for --log-level=debug",
				Sources: envVars("DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			if cmd.Bool("debug") {
				level = "debug"
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			renderCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on
// error. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
