package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/veldtlabs/eventman/event"
)

func gather(t *testing.T, c *Collector) map[string]float64 {
	t.Helper()

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}

	values := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[fam.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[fam.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return values
}

func TestCollector(t *testing.T) {
	mgr := event.New("owner", nil)
	defer mgr.Close()

	if err := mgr.RegisterType("item.changed"); err != nil {
		t.Fatalf("RegisterType() failed: %v", err)
	}
	if err := mgr.RegisterType("item.added"); err != nil {
		t.Fatalf("RegisterType() failed: %v", err)
	}

	cb := func(ev *event.Event, userData any) {}
	if err := mgr.Attach("item.changed", cb, nil); err != nil {
		t.Fatalf("Attach() failed: %v", err)
	}

	mgr.Send(&event.Event{Type: "item.changed"})
	mgr.Send(&event.Event{Type: "item.removed"}) // unroutable

	values := gather(t, NewCollector(mgr, "testns"))

	expect := map[string]float64{
		"testns_events_sent_total":             2,
		"testns_events_deliveries_total":       1,
		"testns_events_callback_panics_total":  0,
		"testns_events_unroutable_sends_total": 1,
		"testns_events_registered_types":       2,
		"testns_events_attached_listeners":     1,
	}
	for name, want := range expect {
		got, ok := values[name]
		if !ok {
			t.Errorf("metric %s missing; got families %v", name, values)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestCollector_ScrapeTracksManager(t *testing.T) {
	mgr := event.New("owner", nil)
	defer mgr.Close()

	if err := mgr.RegisterType("item.changed"); err != nil {
		t.Fatalf("RegisterType() failed: %v", err)
	}

	c := NewCollector(mgr, "testns")
	before := gather(t, c)
	if before["testns_events_sent_total"] != 0 {
		t.Errorf("expected zero sends before activity, got %v", before["testns_events_sent_total"])
	}

	mgr.Send(&event.Event{Type: "item.changed"})

	after := gather(t, c)
	if after["testns_events_sent_total"] != 1 {
		t.Errorf("expected 1 send after activity, got %v", after["testns_events_sent_total"])
	}
}
