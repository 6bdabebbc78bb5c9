package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/veldtlabs/eventman/event"
)

// Collector implements prometheus.Collector over a Manager.
type Collector struct {
	mgr *event.Manager

	eventsSent      *prometheus.Desc
	deliveries      *prometheus.Desc
	callbackPanics  *prometheus.Desc
	unroutableSends *prometheus.Desc
	registeredTypes *prometheus.Desc
	attached        *prometheus.Desc
}

// NewCollector creates a collector for the given manager. Metric names
// are prefixed with the namespace, e.g. "myapp_events_sent_total".
func NewCollector(mgr *event.Manager, namespace string) *Collector {
	return &Collector{
		mgr: mgr,
		eventsSent: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "sent_total"),
			"Total number of events accepted by Send",
			nil, nil,
		),
		deliveries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "deliveries_total"),
			"Total number of callback invocations that completed",
			nil, nil,
		),
		callbackPanics: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "callback_panics_total"),
			"Total number of recovered callback panics",
			nil, nil,
		),
		unroutableSends: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "unroutable_sends_total"),
			"Total number of sends whose event type had no registered group",
			nil, nil,
		),
		registeredTypes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "registered_types"),
			"Number of registered event types",
			nil, nil,
		),
		attached: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "events", "attached_listeners"),
			"Number of currently attached listeners across all types",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.eventsSent
	ch <- c.deliveries
	ch <- c.callbackPanics
	ch <- c.unroutableSends
	ch <- c.registeredTypes
	ch <- c.attached
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.mgr.Stats()

	ch <- prometheus.MustNewConstMetric(c.eventsSent, prometheus.CounterValue, float64(stats.EventsSent))
	ch <- prometheus.MustNewConstMetric(c.deliveries, prometheus.CounterValue, float64(stats.Deliveries))
	ch <- prometheus.MustNewConstMetric(c.callbackPanics, prometheus.CounterValue, float64(stats.CallbackPanics))
	ch <- prometheus.MustNewConstMetric(c.unroutableSends, prometheus.CounterValue, float64(stats.UnroutableSends))

	types := c.mgr.Types()
	listeners := 0
	for _, t := range types {
		listeners += c.mgr.ListenerCount(t)
	}
	ch <- prometheus.MustNewConstMetric(c.registeredTypes, prometheus.GaugeValue, float64(len(types)))
	ch <- prometheus.MustNewConstMetric(c.attached, prometheus.GaugeValue, float64(listeners))
}
