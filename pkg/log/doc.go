// Package log provides the structured logging abstraction used across the
// game.
//
// The Logger interface keeps callers decoupled from the concrete logging
// library. A zerolog-backed adapter is provided for real runs and a no-op
// logger for tests.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	logger.Debug("state transition", log.String("to", "boot"))
//
// Or in tests:
//
//	logger := log.NewNoopLogger()
package log
