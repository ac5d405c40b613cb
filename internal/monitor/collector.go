package monitor

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Metric names exported on /metrics
const (
	namespace = "launchdash"

	OperationsTotalName   = namespace + "_operations_total"
	OperationDurationName = namespace + "_operation_duration_seconds"
	RequestsTotalName     = namespace + "_http_requests_total"
)

// MetricsCollector records operation outcomes and HTTP traffic on a private
// Prometheus registry. Go runtime and process metrics are registered alongside.
type MetricsCollector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	requests   *prometheus.CounterVec
}

// New creates a new metrics collector with its own registry
func New() *MetricsCollector {
	mc := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: OperationsTotalName,
			Help: "Dashboard operations by type and outcome.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    OperationDurationName,
			Help:    "Dashboard operation latency.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RequestsTotalName,
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}

	mc.registry.MustRegister(
		mc.operations,
		mc.durations,
		mc.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return mc
}

// Registry returns the underlying registry
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}

// Handler serves the registry in the Prometheus exposition format
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{Registry: mc.registry})
}

// Track starts timing an operation. The returned func records the outcome
// and must be called exactly once.
func (mc *MetricsCollector) Track(operation OperationType) func(error) {
	start := time.Now()
	return func(err error) {
		status := StatusSuccess
		if err != nil {
			status = StatusError
		}
		mc.operations.WithLabelValues(string(operation), status).Inc()
		mc.durations.WithLabelValues(string(operation)).Observe(time.Since(start).Seconds())
	}
}

// TrackOperation tracks an operation with timing
func (mc *MetricsCollector) TrackOperation(operation OperationType, fn func()) {
	done := mc.Track(operation)
	fn()
	done(nil)
}

// TrackOperationWithError tracks an operation that may return an error
func (mc *MetricsCollector) TrackOperationWithError(operation OperationType, fn func() error) error {
	done := mc.Track(operation)
	err := fn()
	done(err)
	return err
}

// ObserveRequest counts one served HTTP request
func (mc *MetricsCollector) ObserveRequest(route string, code int) {
	mc.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// GetSnapshot reads the operation counters back from the registry
func (mc *MetricsCollector) GetSnapshot() (MetricsSnapshot, error) {
	families, err := mc.registry.Gather()
	if err != nil {
		return MetricsSnapshot{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	byOp := make(map[OperationType]*OperationMetrics, len(Operations))
	for _, op := range Operations {
		byOp[op] = &OperationMetrics{Operation: op}
	}

	snapshot := MetricsSnapshot{Timestamp: time.Now()}
	for _, family := range families {
		switch family.GetName() {
		case OperationsTotalName:
			for _, m := range family.GetMetric() {
				op := byOp[OperationType(labelValue(m, "operation"))]
				if op == nil {
					continue
				}
				count := int64(m.GetCounter().GetValue())
				op.Count += count
				if labelValue(m, "status") == StatusError {
					op.ErrorCount += count
				} else {
					op.SuccessCount += count
				}
			}
		case OperationDurationName:
			for _, m := range family.GetMetric() {
				if op := byOp[OperationType(labelValue(m, "operation"))]; op != nil {
					op.TotalTime += time.Duration(m.GetHistogram().GetSampleSum() * float64(time.Second))
				}
			}
		case RequestsTotalName:
			for _, m := range family.GetMetric() {
				snapshot.Requests += int64(m.GetCounter().GetValue())
			}
		}
	}

	snapshot.Operations = make([]OperationMetrics, 0, len(Operations))
	for _, op := range Operations {
		snapshot.Operations = append(snapshot.Operations, *byOp[op])
	}
	return snapshot, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, pair := range m.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}
