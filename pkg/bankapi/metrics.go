package bankapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports request counts and latencies to Prometheus.
type Metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
func NewPrometheusMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests per operation and status code",
			},
			[]string{"operation", "method", "status_code"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_connection_errors_total",
				Help:      "Total number of requests that never reached the server",
			},
			[]string{"operation", "method"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request latency per operation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "method"},
		),
	}

	for _, collector := range []prometheus.Collector{metrics.requests, metrics.errors, metrics.latency} {
		err := reg.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering metrics collector: %w", err)
		}
	}

	return metrics, nil
}

// Attach adds the metrics interceptors to chain.
func (m *Metrics) Attach(chain *InterceptorChain) {
	chain.AddRequestInterceptor(StartTimeInterceptor())
	chain.AddResponseInterceptor(m.ResponseInterceptor())
}

// ResponseInterceptor records one observation per response.
func (m *Metrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error {
		if latency, ok := RequestLatency(req); ok {
			m.latency.WithLabelValues(req.Operation, req.Method).Observe(latency.Seconds())
		}

		if resp.StatusCode == 0 {
			m.errors.WithLabelValues(req.Operation, req.Method).Inc()

			return nil
		}

		m.requests.WithLabelValues(req.Operation, req.Method, strconv.Itoa(resp.StatusCode)).Inc()

		return nil
	}
}
