/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nestlang/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the NestLang validation HTTP API",
		Description: `Start the HTTP API with POST /v1/validate and POST /v1/examples/render.

The listener is configured through the environment:
  PORT                      listen port (default 8080)
  RATE_LIMIT                requests per second (default 100)
  RATE_LIMIT_BURST          burst size (default 200)
  SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown timeout (default 30)`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level := cmd.String("log-level")
			if cmd.Bool("debug") {
				level = "debug"
			}
			return api.ServeWithContext(ctx, level)
		},
	}
}
