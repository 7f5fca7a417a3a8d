// Package config provides 12-factor configuration management for the
// measurement service.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP or global rate limiting
//   - Diff: Finite-difference scheme for numerically differentiated functions
//   - BudgetFile: Uncertainty budget preloaded into the workspace
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Server.Address())
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED, RATE_LIMIT_SCOPE (client, global)
//   - DIFF_FORMULA (central, forward, backward), DIFF_STEP
//   - BUDGET_FILE
package config
