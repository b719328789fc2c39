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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nestlang/pkg/example"
)

// renderedSeparator separates text blocks in --text mode.
const renderedSeparator = "\n\n---\n\n"

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render a catalog of NestLang examples",
		Description: `Render every example in a catalog into its object and text forms.

A catalog is a YAML or JSON list of examples:

  - title: User Profile
    nestlang: |
      user: (object)
      -name: Full name (string)
    json:
      user:
        name: Ada
    notes:
      - Names are free text.

# Examples

Render a catalog as YAML:
  nestlint render --catalog examples.yaml

Print only the text blocks, e.g. to paste into a prompt:
  nestlint render --catalog examples.yaml --text

Refuse to render when an example's NestLang is invalid:
  nestlint render --catalog cm://docs/nestlang-examples --validate`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "catalog",
				Aliases:  []string{"f"},
				Required: true,
				Usage: `Path/URI to the example catalog.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name[/key]).`,
				Sources: envVars("CATALOG"),
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "Validate each example's NestLang before rendering and fail on errors",
			},
			&cli.BoolFlag{
				Name:  "text",
				Usage: "Write only the rendered text blocks instead of a structured document",
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

			path := cmd.String("catalog")
			catalog, err := example.LoadCatalogWithKubeconfig(path, cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			if cmd.Bool("validate") {
				invalid := example.Invalid(catalog.Validate())
				for _, v := range invalid {
					slog.Error("invalid example",
						"title", v.Title,
						"errors", v.Result.Errors)
				}
				if len(invalid) > 0 {
					return fmt.Errorf("%d of %d example(s) have invalid NestLang", len(invalid), len(catalog))
				}
			}

			set, err := catalog.Render(version)
			if err != nil {
				return fmt.Errorf("failed to render examples: %w", err)
			}

			slog.Info("rendered examples", "catalog", path, "count", len(set.Examples))

			if cmd.Bool("text") {
				return writeText(cmd.String("output"), set.Examples)
			}

			if err := writeOutput(ctx, cmd, outFormat, set); err != nil {
				return fmt.Errorf("failed to serialize examples: %w", err)
			}
			return nil
		},
	}
}

func writeText(path string, rendered []example.Rendered) error {
	blocks := make([]string, 0, len(rendered))
	for _, r := range rendered {
		blocks = append(blocks, r.String)
	}
	text := strings.Join(blocks, renderedSeparator) + "\n"

	if path == "" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
