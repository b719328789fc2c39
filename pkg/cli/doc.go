// Package cli implements the nestlint command-line interface.
//
// # Overview
//
// nestlint validates NestLang schema documents and renders NestLang example
// catalogs. It is meant for schema authors, CI pipelines, and operators who
// keep schemas in Kubernetes ConfigMaps.
//
// # Commands
//
// validate - Validate documents:
//
//	nestlint validate [--fail-on-error] [--concurrency N] [--output FILE] [--format yaml|json|table] <uri>...
//
// Each uri is a file, "-" for stdin, an HTTP/HTTPS URL, or a ConfigMap URI
// (cm://namespace/name[/key]). The result lists every document with its
// errors and a summary.
//
// render - Render an example catalog:
//
//	nestlint render --catalog examples.yaml [--validate] [--text]
//
// serve - Run the HTTP API:
//
//	nestlint serve
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level=debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
// Every flag can be set through a NESTLINT_ prefixed variable, e.g.
// NESTLINT_FORMAT=json or NESTLINT_FAIL_ON_ERROR=true. LOG_LEVEL and
// KUBECONFIG are honored as well.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, load failure, or invalid documents with --fail-on-error
package cli
