// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development and
// production presets, with console or JSON encoding.
//
// # Run Correlation
//
// Every CLI invocation tags its logger with a run_id (a random UUID) through
// WithRunID, so the entries of one reconciliation can be correlated when
// several runs share a log sink.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Reconciliation started", zap.String("highway", path))
package logger
