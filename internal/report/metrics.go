package report

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer собирает телеметрию генерации отчётов
type Observer interface {
	RecordGeneration(kind Kind, duration time.Duration, sizeBytes int, err error)
}

type PrometheusObserver struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
	bytes    *prometheus.CounterVec
}

func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "okr_reports"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	observer := &PrometheusObserver{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of report generation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Count of failed report generations.",
		}, []string{"kind"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_bytes_total",
			Help:      "Cumulative size of generated documents.",
		}, []string{"kind"}),
	}

	// При повторной регистрации переиспользуем уже зарегистрированные коллекторы
	if err := reg.Register(observer.duration); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register report metric: %w", err)
		}
		observer.duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	if err := reg.Register(observer.failures); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register report metric: %w", err)
		}
		observer.failures = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(observer.bytes); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register report metric: %w", err)
		}
		observer.bytes = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return observer, nil
}

func (o *PrometheusObserver) RecordGeneration(kind Kind, duration time.Duration, sizeBytes int, err error) {
	if o == nil {
		return
	}
	o.duration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	if err != nil {
		o.failures.WithLabelValues(string(kind)).Inc()
		return
	}
	o.bytes.WithLabelValues(string(kind)).Add(float64(sizeBytes))
}

type NopObserver struct{}

func (NopObserver) RecordGeneration(Kind, time.Duration, int, error) {}
