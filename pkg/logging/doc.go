// Package logging provides structured logging utilities for the NestLang tools.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so the CLI and the API server log the same way. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nestlintd", version)
//	    slog.Info("processing request", "id", "req-123")
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("nestlint", version, "warn")
//
// Converting to a standard library logger (e.g. for http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug nestlintd
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "document validated",
//	    "module": "nestlint",
//	    "version": "v1.0.0",
//	    "source": "schema.nest"
//	}
package logging
