package runtimeclient

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	exchanges *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		exchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runtime_poller",
			Subsystem: "transport",
			Name:      "exchanges_total",
			Help:      "Exchanges completed against the runtime API, by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "runtime_poller",
			Subsystem: "transport",
			Name:      "exchange_duration_seconds",
			Help:      "Time from request start until the response body was fully buffered.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.exchanges, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
