// Package metrics exposes event manager statistics to Prometheus.
//
// The Collector reads Manager.Stats on every scrape; it holds no state
// of its own and costs nothing between scrapes. Registration is left
// to the caller so that multiple managers can be exported under
// different namespaces without colliding:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(mgr, "myapp"))
package metrics
