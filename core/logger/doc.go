// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports human-friendly console
// output for interactive runs and JSON output for scheduled or piped runs.
//
// # Run Correlation
//
// Every invocation of the tool gets a run ID. The WithRunID helper attaches it to
// the logger so all entries written by one sync run can be correlated, for example
// when several scheduled runs write to the same log sink.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console (colored when stderr is a terminal)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Uploading/Updating started")
package logger
