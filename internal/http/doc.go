// Package http provides HTTP handlers for the measurements REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services (?category=, ?q= for discovery)
//   - Execution: /services/execute
//
// Tool failures (bad operands, domain errors) are reported in the result
// body with status 200; transport-level problems use 4xx/5xx.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, workspace, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
