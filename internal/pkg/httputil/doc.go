// Package httputil provides small helpers for writing JSON HTTP responses
// with a consistent error envelope.
package httputil
