package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the relay.
type Metrics struct {
	ImagesTotal   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		ImagesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_images_processed_total",
			Help: "The total number of uploaded images, by outcome",
		}, []string{"outcome"}), // 'ok', 'no_file', 'rejected', 'annotate_failed', 'format_failed'
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "relay_stage_duration_seconds",
			Help:    "Provider call latency per pipeline stage",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}), // 'annotate', 'format'
	}
}

func (m *Metrics) IncImages(outcome string) {
	m.ImagesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
