/*
Package monitoring provides Prometheus metrics for the measurement service.

# Overview

Metrics are registered on an injected prometheus.Registerer so tests and
embedders can keep them isolated from the default registry.

# Features

- HTTP request metrics (latency, throughput, size)
- Tool call metrics (count by status, duration)
- Workspace size
- Uptime

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	timer := monitoring.NewTimer(metrics, "math.add")
	// ... run the tool ...
	timer.Stop("success")
*/
package monitoring
