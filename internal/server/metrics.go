package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records generate endpoint activity.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ideasTotal      prometheus.Counter
}

// NewMetrics registers the metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intelliproject_generate_requests_total",
				Help: "Total number of generate requests by difficulty and status",
			},
			[]string{"difficulty", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "intelliproject_generate_duration_seconds",
				Help:    "Duration of generate requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		ideasTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "intelliproject_ideas_generated_total",
				Help: "Total number of project ideas returned",
			},
		),
	}
}

// ObserveRequest records one completed generate request.
func (m *Metrics) ObserveRequest(difficulty, status string, ideas int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(difficultyLabel(difficulty), status).Inc()
	m.requestDuration.WithLabelValues(status).Observe(duration.Seconds())
	if ideas > 0 {
		m.ideasTotal.Add(float64(ideas))
	}
}

// difficultyLabel keeps label cardinality bounded to the known set.
func difficultyLabel(d string) string {
	switch d {
	case "Beginner", "Intermediate", "Advanced":
		return d
	}
	return "other"
}
