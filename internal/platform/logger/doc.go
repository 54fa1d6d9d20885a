// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package.
//
// Loggers travel with the request context: middleware attaches a logger
// enriched with request attributes via WithLogger, and stores and services
// retrieve it with FromContextOrDefault so every line emitted on behalf of a
// request carries its trace ID.
package logger
