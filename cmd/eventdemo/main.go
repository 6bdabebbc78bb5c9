// Package main is a small demonstration of the eventman library. It
// registers a pair of event types, attaches listeners, dispatches
// events on a timer, and optionally exposes manager statistics on a
// Prometheus endpoint.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/veldtlabs/eventman/event"
	"github.com/veldtlabs/eventman/event/diag"
	"github.com/veldtlabs/eventman/event/metrics"
)

const (
	typeItemChanged = event.Type("item.changed")
	typeItemAdded   = event.Type("item.added")
)

type itemPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func main() {
	os.Exit(run())
}

func run() int {
	interval := flag.Duration("interval", time.Second, "Delay between dispatched events")
	count := flag.Int("count", 10, "Number of events to dispatch (0 = until interrupted)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (empty = off)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mgr := event.New("eventdemo", diag.NewZerolog(logger))
	defer mgr.Close()

	for _, t := range []event.Type{typeItemChanged, typeItemAdded} {
		if err := mgr.RegisterType(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: register %q: %v\n", t, err)
			return 1
		}
	}

	logEvent := func(ev *event.Event, userData any) {
		doc, err := event.MarshalEvent(ev)
		if err != nil {
			logger.Error().Err(err).Msg("marshal event")
			return
		}
		logger.Info().
			Str("listener", userData.(string)).
			RawJSON("event", doc).
			Msg("received")
	}

	for _, name := range []string{"audit", "cache"} {
		err := mgr.Attach(typeItemChanged, logEvent, name, event.WithLabel(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: attach %s: %v\n", name, err)
			return 1
		}
	}

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector(mgr, "eventdemo"))
		go func() {
			logger.Info().Str("addr", *metricsAddr).Msg("serving metrics")
			err := http.ListenAndServe(*metricsAddr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err != nil {
				logger.Error().Err(err).Msg("metrics server")
			}
		}()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	sent := 0
	for *count == 0 || sent < *count {
		select {
		case <-signals:
			printStats(mgr)
			return 0
		case <-ticker.C:
			sent++
			mgr.Send(&event.Event{
				Type:    typeItemChanged,
				Payload: itemPayload{Name: "widget", Count: sent},
			})
			// Nobody listens to item.added; the send is a no-op.
			mgr.Send(&event.Event{
				Type:    typeItemAdded,
				Payload: itemPayload{Name: "widget"},
			})
		}
	}

	printStats(mgr)
	return 0
}

func printStats(mgr *event.Manager) {
	stats := mgr.Stats()
	fmt.Printf("sent=%d delivered=%d panics=%d unroutable=%d\n",
		stats.EventsSent, stats.Deliveries, stats.CallbackPanics, stats.UnroutableSends)
}
