package adapter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "textaug.dev/pkg/textaug/internal/model"
)

// Metrics records augmentation activity.
// Implementations must be safe for concurrent use by batch workers.
type Metrics interface {
	// Observe records the mutation count of one augmented document.
	Observe(level m.Level, action m.Action, changed int)
	// ObserveBatch records one batch call.
	ObserveBatch(mode string, outputs int, elapsed time.Duration)
	// Flush writes the collected metrics in the Prometheus text format to path.
	Flush(path string) error
}

// PrometheusMetrics keeps the metrics in a private Prometheus registry.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	DocumentsTotal *prometheus.CounterVec
	MutationsTotal *prometheus.CounterVec
	UnchangedTotal *prometheus.CounterVec
	BatchDuration  *prometheus.HistogramVec
	BatchOutputs   *prometheus.CounterVec
}

// NewPrometheusMetrics creates the metrics in a fresh registry, so repeated
// construction in one process never collides.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,

		DocumentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textaug_documents_total",
				Help: "Total number of augmented documents",
			},
			[]string{"level", "action"},
		),

		MutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textaug_mutations_total",
				Help: "Total number of mutations applied to documents",
			},
			[]string{"level", "action"},
		),

		UnchangedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textaug_unchanged_documents_total",
				Help: "Total number of documents left untouched",
			},
			[]string{"level", "action"},
		),

		BatchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "textaug_batch_duration_seconds",
				Help:    "Batch call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),

		BatchOutputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textaug_batch_outputs_total",
				Help: "Total number of variants requested from batch calls",
			},
			[]string{"mode"},
		),
	}
}

// Registry exposes the underlying registry.
func (p *PrometheusMetrics) Registry() *prometheus.Registry {
	return p.registry
}

// Observe implements Metrics.
func (p *PrometheusMetrics) Observe(level m.Level, action m.Action, changed int) {
	labels := prometheus.Labels{"level": string(level), "action": string(action)}

	p.DocumentsTotal.With(labels).Inc()
	p.MutationsTotal.With(labels).Add(float64(changed))

	if changed == 0 {
		p.UnchangedTotal.With(labels).Inc()
	}
}

// ObserveBatch implements Metrics.
func (p *PrometheusMetrics) ObserveBatch(mode string, outputs int, elapsed time.Duration) {
	p.BatchDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	p.BatchOutputs.WithLabelValues(mode).Add(float64(outputs))
}

// Flush implements Metrics.
func (p *PrometheusMetrics) Flush(path string) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		slog.Error("Failed to write metrics", "path", path, "error", err)
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	slog.Debug("Metrics written", "path", path)

	return nil
}
