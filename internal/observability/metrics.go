package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the codec collectors. One Metrics is registered into one
// registry.
type Metrics struct {
	operations *prometheus.CounterVec
	bytes      *prometheus.CounterVec
}

func newMetrics() *Metrics {
	return &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "discodec",
				Subsystem: "codec",
				Name:      "operations_total",
				Help:      "Record encode/decode calls by outcome.",
			},
			[]string{"op", "record", "result"},
		),
		bytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "discodec",
				Subsystem: "codec",
				Name:      "bytes_total",
				Help:      "Bytes produced or consumed by successful codec calls.",
			},
			[]string{"op", "record"},
		),
	}
}

// NewMetrics builds the collectors and registers them into reg. A reg that
// already holds equivalent collectors is reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := newMetrics()
	ops, err := register(reg, m.operations)
	if err != nil {
		return nil, err
	}
	bytes, err := register(reg, m.bytes)
	if err != nil {
		return nil, err
	}
	m.operations, m.bytes = ops, bytes
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *Metrics) RecordSuccess(op, record string, n int) {
	m.operations.WithLabelValues(op, record, ResultOK).Inc()
	m.bytes.WithLabelValues(op, record).Add(float64(n))
}

func (m *Metrics) RecordFailure(op, record string) {
	m.operations.WithLabelValues(op, record, ResultError).Inc()
}
