package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// CRMOperations counts CRM operations by kind and outcome ("ok" or "error").
	CRMOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_operations_total",
			Help: "Total number of CRM operations executed",
		},
		[]string{"operation", "outcome"},
	)

	// TranscriptionOutcomes counts transcriptions by outcome ("accepted", "rejected", "error").
	TranscriptionOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcriptions_total",
			Help: "Total number of transcription attempts",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, CRMOperations, TranscriptionOutcomes)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, latency time.Duration) {
	RequestsTotal.WithLabelValues(method, path, status).Inc()
	RequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

// ObserveCRMOperation records the outcome of a CRM operation.
func ObserveCRMOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CRMOperations.WithLabelValues(operation, outcome).Inc()
}

// MetricsHandler exposes the default registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
