// Package logging provides structured logging using Go's standard library log/slog.
// Logs are JSON by default, with a text format for terminals, and the logger
// is supplied to Fx modules such as the provider configuration module.
package logging
