// Package metrics records run metrics for the league tool.
//
// The tool is a batch job, so metrics are collected in a private registry and
// written once to a node_exporter textfile at the end of a run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "futebol"

// Recorder is the metrics surface used by the services.
type Recorder interface {
	// RecordSeed adds n inserted records for the collection.
	RecordSeed(collection string, n int)

	// RecordReport records one report execution.
	RecordReport(report string, rows int, elapsed time.Duration)

	// SetRunSuccess marks whether the last run completed.
	SetRunSuccess(ok bool)
}

// Metrics is a Recorder backed by a Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	seedRecords    *prometheus.CounterVec
	reportRows     *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
	lastRunSuccess prometheus.Gauge
}

var _ Recorder = (*Metrics)(nil)

// New creates metrics registered on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		seedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_records_total",
			Help:      "Records inserted by the seed loader, by collection.",
		}, []string{"collection"}),
		reportRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_rows_total",
			Help:      "Rows returned by each report.",
		}, []string{"report"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time spent running each report.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"report"}),
		lastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run completed without error, 0 otherwise.",
		}),
	}

	m.registry.MustRegister(m.seedRecords, m.reportRows, m.reportDuration, m.lastRunSuccess)
	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordSeed(collection string, n int) {
	m.seedRecords.WithLabelValues(collection).Add(float64(n))
}

func (m *Metrics) RecordReport(report string, rows int, elapsed time.Duration) {
	m.reportRows.WithLabelValues(report).Add(float64(rows))
	m.reportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

func (m *Metrics) SetRunSuccess(ok bool) {
	if ok {
		m.lastRunSuccess.Set(1)
		return
	}
	m.lastRunSuccess.Set(0)
}

// WriteFile writes every metric to path in the text exposition format. The
// file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

var _ Recorder = NoOpMetrics{}

func (NoOpMetrics) RecordSeed(string, int) {}
func (NoOpMetrics) RecordReport(string, int, time.Duration) {}
func (NoOpMetrics) SetRunSuccess(bool) {}
