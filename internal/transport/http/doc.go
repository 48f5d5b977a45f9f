// Package http contains the HTTP transport layer: chi handlers and routing
// for the stats API, health checks and Prometheus metrics. Handlers depend
// on narrow service interfaces and render through chi/render, with errors
// wrapped in the standard API envelope from rkcli/internal/errors.
package http
