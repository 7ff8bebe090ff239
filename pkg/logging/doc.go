// Package logging provides structured logging utilities for neurotune components.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions shared by every neurotune surface. It supports environment-based
// log level configuration, module/version context injection, and automatic
// source location tracking for debug logs.
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("neurotune", version)
//
//	    slog.Info("probing accelerators", "tool", "neuron-ls")
//	    slog.Debug("detailed state", "snapshot", snap)
//	    slog.Error("scrape failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("neurotune", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug neurotune monitor
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "snapshot complete",
//	    "module": "neurotune",
//	    "version": "v0.3.0",
//	    "accelerators": 4
//	}
//
// Debug logs additionally carry a source block with function, file, and line.
package logging
