package eventstream

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	issued   prometheus.Counter
	outcomes *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime_poller",
			Subsystem: "stream",
			Name:      "exchanges_issued_total",
			Help:      "Next-event exchanges started by the event stream.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runtime_poller",
			Subsystem: "stream",
			Name:      "outcomes_total",
			Help:      "Outcomes yielded by the event stream, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.issued, m.outcomes)
	return m
}
