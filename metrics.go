package wsrp

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts dispatched operations and the faults they produced.
type Metrics struct {
	Calls  *prometheus.CounterVec
	Faults *prometheus.CounterVec
}

// NewMetrics creates the producer counters and registers them with reg when
// it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wsrp",
			Subsystem: "producer",
			Name:      "calls_total",
			Help:      "Operations dispatched by the producer.",
		}, []string{"operation"}),
		Faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wsrp",
			Subsystem: "producer",
			Name:      "faults_total",
			Help:      "Operations that ended in a fault, by fault code.",
		}, []string{"operation", "code"}),
	}
	if reg != nil {
		reg.MustRegister(m.Calls, m.Faults)
	}
	return m
}

func (m *Metrics) observe(operation Operation, err error) {
	if m == nil {
		return
	}
	m.Calls.WithLabelValues(string(operation)).Inc()
	if err == nil {
		return
	}
	code := "error"
	if fault, ok := AsFault(err); ok {
		code = string(fault.Code)
	}
	m.Faults.WithLabelValues(string(operation), code).Inc()
}
