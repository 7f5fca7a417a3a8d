// Package server wires configuration, logging, metrics and the service
// registry into a gin HTTP server.
//
// Server Lifecycle:
//  1. Build the finite-difference differentiator from config
//  2. Create the workspace, preloading BUDGET_FILE if set
//  3. Register the math provider
//  4. Setup middleware (recovery, tracing, metrics, CORS, rate limiting) and routes
//  5. Serve until Shutdown
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
