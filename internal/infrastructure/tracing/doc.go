// Package tracing assigns every API request a trace ID and logs a span for
// it once the response is written.
//
// Trace IDs are request IDs (req_<ULID>) and travel in the X-Request-ID
// header; callers may supply their own to correlate several calls.
// Handlers read the ID from the request context with GetTraceID.
//
// Spans are collected on a buffered channel and logged by one goroutine,
// so request handling never blocks on logging. A full buffer drops spans
// with a warning.
//
// Example Usage:
//
//	tracer := tracing.New("measurements", logger.Logger)
//	defer tracer.Close()
//	router.Use(tracing.HTTPMiddleware(tracer))
package tracing
