package monitor

import "time"

// OperationType represents different operation types being monitored
type OperationType string

const (
	OperationLoad    OperationType = "load"
	OperationPie     OperationType = "pie"
	OperationScatter OperationType = "scatter"
	OperationRender  OperationType = "render"
)

// Operations lists every tracked operation type
var Operations = []OperationType{OperationLoad, OperationPie, OperationScatter, OperationRender}

// Operation status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// OperationMetrics holds the aggregated metrics of one operation type
type OperationMetrics struct {
	Operation    OperationType `json:"operation" yaml:"operation"`
	Count        int64         `json:"count" yaml:"count"`
	SuccessCount int64         `json:"success_count" yaml:"success_count"`
	ErrorCount   int64         `json:"error_count" yaml:"error_count"`
	TotalTime    time.Duration `json:"total_time_ns" yaml:"total_time_ns"`
}

// AvgTime returns the mean duration of the operation
func (m OperationMetrics) AvgTime() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.TotalTime / time.Duration(m.Count)
}

// MetricsSnapshot represents a point-in-time snapshot of the operation metrics
type MetricsSnapshot struct {
	Timestamp  time.Time          `json:"timestamp" yaml:"timestamp"`
	Operations []OperationMetrics `json:"operations" yaml:"operations"`
	Requests   int64              `json:"requests" yaml:"requests"`
}

// Operation returns the metrics of op, zero valued when op is unknown
func (s MetricsSnapshot) Operation(op OperationType) OperationMetrics {
	for _, m := range s.Operations {
		if m.Operation == op {
			return m
		}
	}
	return OperationMetrics{Operation: op}
}
