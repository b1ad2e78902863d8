// Package logger builds configured log/slog loggers with functional options
// and environment presets.
//
// Production and staging use JSON output at info level for log aggregation;
// development uses text output at debug level. Every preset stamps the
// service name and environment on each record.
package logger
