package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "textaug.dev/pkg/textaug/internal/model"
)

// gathered returns the value of the counter or histogram sample count of the
// series with the given name and labels, or -1 when absent.
func gathered(t *testing.T, metrics *PrometheusMetrics, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			matched := 0

			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] == pair.GetValue() {
					matched++
				}
			}

			if matched != len(labels) {
				continue
			}

			if histogram := metric.GetHistogram(); histogram != nil {
				return float64(histogram.GetSampleCount())
			}

			return metric.GetCounter().GetValue()
		}
	}

	return -1
}

func TestPrometheusMetrics_Observe(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.Observe(m.LevelChar, m.ActionSubstitute, 3)
	metrics.Observe(m.LevelChar, m.ActionSubstitute, 0)
	metrics.Observe(m.LevelWord, m.ActionDelete, 1)

	charSub := map[string]string{"level": "char", "action": "substitute"}
	wordDel := map[string]string{"level": "word", "action": "delete"}

	assert.InDelta(t, 2, gathered(t, metrics, "textaug_documents_total", charSub), 1e-9)
	assert.InDelta(t, 3, gathered(t, metrics, "textaug_mutations_total", charSub), 1e-9)
	assert.InDelta(t, 1, gathered(t, metrics, "textaug_unchanged_documents_total", charSub), 1e-9)
	assert.InDelta(t, 1, gathered(t, metrics, "textaug_documents_total", wordDel), 1e-9)
	assert.InDelta(t, -1, gathered(t, metrics, "textaug_unchanged_documents_total", wordDel), 1e-9)
}

func TestPrometheusMetrics_ObserveBatch(t *testing.T) {
	metrics := NewPrometheusMetrics()

	metrics.ObserveBatch("repeat", 5, 20*time.Millisecond)
	metrics.ObserveBatch("repeat", 3, 10*time.Millisecond)

	repeat := map[string]string{"mode": "repeat"}

	assert.InDelta(t, 8, gathered(t, metrics, "textaug_batch_outputs_total", repeat), 1e-9)
	assert.InDelta(t, 2, gathered(t, metrics, "textaug_batch_duration_seconds", repeat), 1e-9)
}

func TestPrometheusMetrics_Flush(t *testing.T) {
	t.Run("empty path is a no-op", func(t *testing.T) {
		require.NoError(t, NewPrometheusMetrics().Flush(""))
	})

	t.Run("writes text format", func(t *testing.T) {
		metrics := NewPrometheusMetrics()
		metrics.Observe(m.LevelChar, m.ActionSwap, 2)

		path := filepath.Join(t.TempDir(), "textaug.prom")
		require.NoError(t, metrics.Flush(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `textaug_mutations_total{action="swap",level="char"} 2`)
	})

	t.Run("independent registries", func(t *testing.T) {
		first := NewPrometheusMetrics()
		second := NewPrometheusMetrics()
		first.Observe(m.LevelChar, m.ActionSwap, 1)

		assert.NotSame(t, first.Registry(), second.Registry())
		assert.InDelta(t, -1, gathered(t, second, "textaug_documents_total", map[string]string{"level": "char"}), 1e-9)
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "textaug.prom")
		require.Error(t, NewPrometheusMetrics().Flush(path))
	})
}
