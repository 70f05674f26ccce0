/*
Package observability turns engine lifecycle events into Prometheus metrics.

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	eng := runtime.NewEngine(h, runtime.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
