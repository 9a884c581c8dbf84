// Package log provides structured logging for the imstr foundation and the
// imstr command line tool.
//
// Package: log
// Title: Structured Logging for imstr Foundation
// Description: Leveled, field-based logging with JSON, text, console and logfmt
//              output. Structured errors from core/error are logged with their
//              code, severity and details, and the log level is derived from the
//              error severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Removed async buffering and request/user context
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatConsole})
//	logger = logger.WithCorrelationID(runID)
//	logger.Info("demo started", log.Int("steps", 14))
//
//	timer := logger.StartTimer("imstr.ReplaceAll")
//	result, err := imstr.ReplaceAll(s, what, to)
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
//
// Loggers are immutable: every With* method returns a copy, so a derived logger
// can be handed to another goroutine without affecting its parent.
package log
