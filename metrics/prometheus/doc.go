// Package prometheus exports index metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := suggestprom.New(reg)
//	if err != nil { ... }
//
//	idx, err := suggest.Open(ctx, store, name, suggest.WithMetricsCollector(mc))
package prometheus
