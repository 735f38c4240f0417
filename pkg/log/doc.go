// Package log provides the structured logger used across txsigner.
//
// Components receive a Logger explicitly; nothing in this package keeps
// global state. Two implementations exist:
//
//   - ZapLogger: zap-backed, with console, logfmt and json encodings
//   - NoopLogger: discards everything, the default for library callers
//
// Create a logger from configuration:
//
//	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelDebug})
//	logger = logger.WithName("txsign")
//	logger.Debug("transaction signed", "raw_len", 110)
//
// A logger can travel in a context with SetContextLogger and come back out
// with FromContext, which returns a NoopLogger when none was stored.
//
// The environment variables LOG_FORMAT, LOG_LEVEL and LOG_OUTPUT fill a
// Config through cleanenv.
package log
