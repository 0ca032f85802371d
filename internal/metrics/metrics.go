// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"

	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess          = "success"
	ResultNotFound         = "not_found"
	ResultConflict         = "conflict"
	ResultInvalidOperation = "invalid_operation"
	ResultError            = "error"
)

var (
	// OperationsTotal counts manager operations.
	// Labels: entity, operation, result
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_management_operations_total",
			Help: "Total number of service operations by entity and result",
		},
		[]string{"entity", "operation", "result"},
	)

	// GuardRejectionsTotal counts mutations rejected by a guard.
	// Labels: entity, reason
	GuardRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_management_guard_rejections_total",
			Help: "Total number of mutations rejected by hierarchy, referential or uniqueness guards",
		},
		[]string{"entity", "reason"},
	)

	// QueryDurationSeconds tracks listing latency.
	// Labels: entity
	QueryDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_management_query_duration_seconds",
			Help:    "Listing request duration distribution",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1.0},
		},
		[]string{"entity"},
	)

	// TransactionRetriesTotal counts serializable transactions retried
	// after a serialization failure.
	TransactionRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_management_transaction_retries_total",
			Help: "Total number of transactions retried after a serialization failure",
		},
	)

	// HTTPRequestsTotal counts REST requests.
	// Labels: method, route, status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_management_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// LoginAttemptsTotal counts login attempts.
	// Labels: result (success, failure)
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_management_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)
)

// Result classifies err into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, guard.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, guard.ErrConflict):
		return ResultConflict
	case errors.Is(err, guard.ErrInvalidOperation):
		return ResultInvalidOperation
	}
	return ResultError
}

// RecordOperation records the outcome of a manager operation and, for guard
// rejections, the rejection reason.
func RecordOperation(entity, operation string, err error) {
	OperationsTotal.WithLabelValues(entity, operation, Result(err)).Inc()

	var ge *guard.Error
	if errors.As(err, &ge) {
		GuardRejectionsTotal.WithLabelValues(entity, ge.Reason).Inc()
	}
}

// RecordQueryDuration records listing latency in seconds.
func RecordQueryDuration(entity string, seconds float64) {
	QueryDurationSeconds.WithLabelValues(entity).Observe(seconds)
}

// RecordHTTPRequest records a served REST request.
func RecordHTTPRequest(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordLogin records a login attempt.
func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = ResultSuccess
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}
