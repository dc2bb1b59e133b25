package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups, by activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations, by activity.",
	}, []string{"activity"})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests served, by method, path, and status code.",
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, httpRequestsTotal)
}

// RecordSignup counts a successful signup for the activity.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordUnregistration counts a successful unregistration for the activity.
func RecordUnregistration(activity string) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
}

// RecordHTTPRequest counts a served HTTP request.
func RecordHTTPRequest(method, path string, status int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
