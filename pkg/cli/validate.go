/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nestlang/pkg/defaults"
	"github.com/NVIDIA/nestlang/pkg/document"
	"github.com/NVIDIA/nestlang/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate NestLang documents",
		ArgsUsage:             "<uri>...",
		Description: `Validate one or more NestLang documents and report every error with its
line number. Line numbers count non-blank lines only.

Each argument is a document source:
  -                         standard input
  schema.nest               local file
  https://host/schema.nest  remote file
  cm://namespace/name       every .nest/.nestlang key of a ConfigMap
  cm://namespace/name/key   a single ConfigMap key

# Examples

Validate a local file:
  nestlint validate user.nest

Validate stdin and print JSON:
  cat user.nest | nestlint validate -t json -

Validate every schema in a ConfigMap and store the result in another one:
  nestlint validate cm://schemas/user-schemas -o cm://schemas/validation-result

Fail the command if any document is invalid (useful for CI/CD):
  nestlint validate --fail-on-error schemas/*.nest`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "fail-on-error",
				Usage:   "Exit with non-zero status if any document is invalid",
				Sources: envVars("FAIL_ON_ERROR"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Value:   defaults.ValidationConcurrency,
				Usage:   "Maximum number of documents validated in parallel",
				Sources: envVars("CONCURRENCY"),
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			uris := cmd.Args().Slice()
			if len(uris) == 0 {
				return fmt.Errorf("at least one document source is required")
			}

			slog.Info("loading documents", "sources", len(uris))

			docs, err := document.LoadAll(ctx, uris,
				document.WithKubeconfig(cmd.String("kubeconfig")))
			if err != nil {
				return fmt.Errorf("failed to load documents: %w", err)
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithConcurrency(int(cmd.Int("concurrency"))),
			)

			result, err := v.Validate(ctx, docs)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if err := writeOutput(ctx, cmd, outFormat, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"errors", result.Summary.Errors,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Summary.Status == validator.ValidationStatusFail {
				return fmt.Errorf("validation failed: %d document(s) invalid", result.Summary.Failed)
			}

			return nil
		},
	}
}
