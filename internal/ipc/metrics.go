package ipc

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	frames   prometheus.Counter
	failures prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagefx",
			Name:      "transitions_started_total",
			Help:      "Transitions started, by style.",
		}, []string{"style"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagefx",
			Name:      "transitions_finished_total",
			Help:      "Transitions observed finishing, by style.",
		}, []string{"style"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pagefx",
			Name:      "frames_served_total",
			Help:      "Frames returned by GET /frame.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pagefx",
			Name:      "start_failures_total",
			Help:      "Start requests that could not be served.",
		}),
	}
	reg.MustRegister(m.started, m.finished, m.frames, m.failures)
	return m
}
