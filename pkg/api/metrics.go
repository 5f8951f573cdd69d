package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for a telemetry pipeline.
type Metrics struct {
	framesDecoded *prometheus.CounterVec
	framesUnknown prometheus.Counter
	resyncsTotal  prometheus.Counter
	bytesRead     prometheus.Counter
	httpRequests  *prometheus.CounterVec
	handler       http.Handler
}

// NewMetrics creates and registers the pipeline metrics against reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry so
// parallel servers do not collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	handler := promhttp.Handler()
	if g, ok := reg.(prometheus.Gatherer); ok {
		handler = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return &Metrics{
		handler: handler,
		framesDecoded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telempack_frames_decoded_total",
				Help: "Total number of telemetry frames decoded",
			},
			[]string{"type"},
		),
		framesUnknown: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "telempack_frames_unknown_total",
				Help: "Total number of well-framed messages with an unregistered type code",
			},
		),
		resyncsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "telempack_stream_resyncs_total",
				Help: "Total number of resynchronization attempts after corrupt frames",
			},
		),
		bytesRead: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "telempack_bytes_read_total",
				Help: "Total bytes pulled from the telemetry byte source",
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telempack_http_requests_total",
				Help: "Total number of HTTP API requests",
			},
			[]string{"endpoint"},
		),
	}
}

// Handler serves the registry these metrics were registered with.
func (m *Metrics) Handler() http.Handler { return m.handler }

// RecordFrame counts one decoded frame. Frames with no fields for an
// unregistered code count as unknown.
func (m *Metrics) RecordFrame(typeName string, known bool) {
	m.framesDecoded.WithLabelValues(typeName).Inc()
	if !known {
		m.framesUnknown.Inc()
	}
}

// RecordResync counts a recovery attempt after a corrupt frame.
func (m *Metrics) RecordResync() { m.resyncsTotal.Inc() }

// AddBytesRead accounts bytes pulled from the source.
func (m *Metrics) AddBytesRead(n int64) { m.bytesRead.Add(float64(n)) }

// RecordHTTPRequest counts one API request.
func (m *Metrics) RecordHTTPRequest(endpoint string) {
	m.httpRequests.WithLabelValues(endpoint).Inc()
}
