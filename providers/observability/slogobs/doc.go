// Package slogobs provides an observability.Provider backed by log/slog.
// Spans and metrics become log records; the handler writes compact, pretty or
// JSON lines and keeps attributes in the order they were given.
// Logs default to standard error so they never mix with converted output on
// standard output. The main entry point is [New].
package slogobs
