// Package http contains the HTTP handlers for the dashboard API.
//
// Handlers follow a consistent pattern: chi sub-routers per resource,
// render for JSON envelopes and RFC 7807 problem details for errors via
// the shared ErrorHandler.
package http
