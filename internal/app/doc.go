// Package app wires configuration, logging, metrics, services and the HTTP
// router into a runnable application.
//
// The lifecycle is: NewApplication loads config and data and builds the
// router, Run starts the server and blocks until an interrupt, Stop drains
// in-flight requests and shuts the telemetry down.
package app
