package ownerapi

import (
	"regexp"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var idSegment = regexp.MustCompile(`^([0-9]+|[0-9a-fA-F-]{16,})$`)

// Metrics records every call made to the salon backend.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salondash",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Requests sent to the salon backend.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salondash",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests sent to the salon backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}

	return m
}

func (m *Metrics) observe(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}

	route := routeLabel(path)
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// routeLabel replaces id segments so the label set stays bounded.
func routeLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if idSegment.MatchString(seg) {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}
