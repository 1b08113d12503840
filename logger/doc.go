// Package logger provides a zerolog-backed structured logger with
// console and JSON output formats, configurable via Config or
// environment variables (LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT).
package logger
