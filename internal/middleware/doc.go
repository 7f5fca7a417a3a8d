// Package middleware provides HTTP middleware for the measurement service.
//
// CORS wraps gin-contrib/cors with a permissive default suitable for a
// browser calculator front end.
//
// RateLimit keeps one token bucket per client IP and evicts buckets that
// have been idle for longer than ten minutes. GlobalRateLimit shares a
// single bucket across all clients.
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
