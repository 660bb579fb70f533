package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/watt-toolkit/hais/pkg/hais/bufpool"
)

const metricsNamespace = "hais"

// Metrics holds the server's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	connections  prometheus.Counter
	active       prometheus.Gauge
	duration     prometheus.Histogram
	responses    *prometheus.CounterVec
	bytes        prometheus.Counter
	acceptErrors prometheus.Counter
	writeErrors  prometheus.Counter
}

// NewMetrics registers the server collectors with reg, plus gauges that read
// pool's counters at scrape time.
func NewMetrics(reg prometheus.Registerer, pool *bufpool.Pool) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		connections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "connections_total",
			Help:      "Total number of connections accepted",
		}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "active_connections",
			Help:      "Number of connections being served",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "connection_duration_seconds",
			Help:      "Time from accept to close",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "responses_total",
			Help:      "Total number of responses sent, by status code",
		}, []string{"code"}),
		bytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "bytes_written_total",
			Help:      "Total response bytes written, heads included",
		}),
		acceptErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "accept_errors_total",
			Help:      "Total number of failed accepts",
		}),
		writeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "server",
			Name:      "write_errors_total",
			Help:      "Total number of responses aborted by a failed write",
		}),
	}

	if pool != nil {
		size := strconv.Itoa(pool.Size())
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "buffer_pool",
			Name:        "gets",
			Help:        "Buffer Get operations since start",
			ConstLabels: prometheus.Labels{"size": size},
		}, func() float64 { return float64(pool.Metrics().Gets) })
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "buffer_pool",
			Name:        "misses",
			Help:        "Buffer allocations since start",
			ConstLabels: prometheus.Labels{"size": size},
		}, func() float64 { return float64(pool.Metrics().Misses) })
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "buffer_pool",
			Name:        "hit_rate",
			Help:        "Current buffer pool hit rate (0-100%)",
			ConstLabels: prometheus.Labels{"size": size},
		}, func() float64 { return pool.Metrics().HitRate })
	}
	return m
}

func (m *Metrics) connOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
	m.active.Inc()
}

func (m *Metrics) connClosed(d time.Duration) {
	if m == nil {
		return
	}
	m.active.Dec()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) response(code int, bytes uint64) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(strconv.Itoa(code)).Inc()
	m.bytes.Add(float64(bytes))
}

func (m *Metrics) acceptError() {
	if m == nil {
		return
	}
	m.acceptErrors.Inc()
}

func (m *Metrics) writeError() {
	if m == nil {
		return
	}
	m.writeErrors.Inc()
}
