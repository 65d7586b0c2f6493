package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}

// EvaluationMetrics counts pipeline outcomes. It satisfies the evaluation
// observer contract so the daemon can plug it straight into the use case.
type EvaluationMetrics struct {
	assessmentsTotal   prometheus.Counter
	blockedTotal       prometheus.Counter
	fetchFailuresTotal *prometheus.CounterVec
}

// NewEvaluationMetrics registers the evaluation counters on the default
// registry.
func NewEvaluationMetrics() *EvaluationMetrics {
	return &EvaluationMetrics{
		assessmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "integration_assessments_total",
			Help: "Total number of completed integration assessments.",
		}),
		blockedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "integration_assessments_blocked_total",
			Help: "Total number of assessments that crossed the blocking threshold.",
		}),
		fetchFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "integration_fetch_failures_total",
			Help: "Total number of upstream fetch failures by resource.",
		}, []string{"resource"}),
	}
}

// FetchStarted is a no-op; only terminal outcomes are counted.
func (m *EvaluationMetrics) FetchStarted(string, int) {}

// FetchFailed counts an upstream fetch failure.
func (m *EvaluationMetrics) FetchFailed(resource string, _ int, _ error) {
	m.fetchFailuresTotal.WithLabelValues(resource).Inc()
}

// AssessmentProduced counts a completed assessment.
func (m *EvaluationMetrics) AssessmentProduced(_ int, blocked bool) {
	m.assessmentsTotal.Inc()
	if blocked {
		m.blockedTotal.Inc()
	}
}
