package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskearn",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "taskearn",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	walletOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskearn",
			Subsystem: "wallet",
			Name:      "operations_total",
			Help:      "Wallet credits and debits by reason and result.",
		},
		[]string{"type", "reason", "result"},
	)

	taskTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskearn",
			Subsystem: "tasks",
			Name:      "transitions_total",
			Help:      "Task lifecycle transitions by target status.",
		},
		[]string{"to"},
	)

	evaluatedAccounts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taskearn",
			Subsystem: "activity",
			Name:      "evaluated_accounts_total",
			Help:      "Accounts inspected by the activity evaluator by outcome.",
		},
		[]string{"outcome"},
	)

	evaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "taskearn",
			Subsystem: "activity",
			Name:      "run_duration_seconds",
			Help:      "Duration of activity evaluator runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		walletOperations,
		taskTransitions,
		evaluatedAccounts,
		evaluationDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordWalletOperation(entryType, reason string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	walletOperations.WithLabelValues(entryType, reason, result).Inc()
}

func RecordTaskTransition(to string) {
	taskTransitions.WithLabelValues(to).Inc()
}

func RecordEvaluation(outcome string) {
	evaluatedAccounts.WithLabelValues(outcome).Inc()
}

func ObserveEvaluationRun(d time.Duration) {
	evaluationDuration.Observe(d.Seconds())
}

// InstrumentHandler records request counts and latency labelled by the matched chi route.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
