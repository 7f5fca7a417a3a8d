// Package main is the entry point for the measurements server.
//
// The server exposes uncertainty-propagating math tools over a REST API:
// callers create measurements (value ± uncertainty), combine them with
// arithmetic and special functions, and read back results whose
// uncertainties account for shared inputs.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Preload named inputs from a budget file
//	./server -budget inputs.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
