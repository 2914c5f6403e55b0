package organizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/sift/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "sift"

// Metrics exports ingestion counters to Prometheus. A nil *Metrics records nothing.
type Metrics struct {
	organized *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewMetrics registers the organizer collectors on reg, or the default registerer when nil.
// Collectors already registered by an earlier organizer are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	organized := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "files_organized_total",
		Help:      "Files categorized, by assigned category.",
	}, []string{"category"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "decode_failures_total",
		Help:      "Files that could not be decoded, by extension.",
	}, []string{"extension"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "ingest_duration_seconds",
		Help:      "Wall time to decode and categorize one upload batch.",
		Buckets:   prometheus.DefBuckets,
	})

	var err error
	m := &Metrics{}
	if m.organized, err = register(reg, organized); err != nil {
		return nil, err
	}
	if m.failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register organizer metrics: %w", err)
	}
	return c, nil
}

func (m *Metrics) fileOrganized(category model.CategoryName) {
	if m == nil {
		return
	}
	m.organized.WithLabelValues(string(category)).Inc()
}

func (m *Metrics) decodeFailed(extension string) {
	if m == nil {
		return
	}
	if extension == "" {
		extension = "none"
	}
	m.failures.WithLabelValues(extension).Inc()
}

func (m *Metrics) batchDone(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(elapsed.Seconds())
}
