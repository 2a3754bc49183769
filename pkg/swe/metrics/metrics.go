// Package metrics exposes Prometheus instrumentation for the swe wrapper.
//
// Metrics:
//
//	swe_calc_total{body,outcome}               calculations by outcome (ok|error)
//	swe_calc_duration_seconds                  time spent inside swe_calc_ut, lock wait included
//	swe_lifecycle_state                        0 unconfigured, 1 ready, 2 closed
//	swe_precondition_violations_total{operation}
//
// A Collector is attached with (*swe.Ephemeris).SetCollector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "swe"

// Collector holds the wrapper's metrics.
type Collector struct {
	calcTotal    *prometheus.CounterVec
	calcDuration prometheus.Histogram
	state        prometheus.Gauge
	violations   *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		calcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calc_total",
			Help:      "Body position calculations by body and outcome.",
		}, []string{"body", "outcome"}),
		calcDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calc_duration_seconds",
			Help:      "Latency of body position calculations.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lifecycle_state",
			Help:      "Library lifecycle phase: 0 unconfigured, 1 ready, 2 closed.",
		}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "precondition_violations_total",
			Help:      "Calls made outside the ready window or with invalid arguments.",
		}, []string{"operation"}),
	}
	reg.MustRegister(c.calcTotal, c.calcDuration, c.state, c.violations)
	return c
}

// ObserveCalc records one calculation.
func (c *Collector) ObserveCalc(body string, ok bool, d time.Duration) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	c.calcTotal.WithLabelValues(body, outcome).Inc()
	c.calcDuration.Observe(d.Seconds())
}

// SetState records the lifecycle phase.
func (c *Collector) SetState(phase int) {
	c.state.Set(float64(phase))
}

// PreconditionViolation counts a contract violation for operation.
func (c *Collector) PreconditionViolation(operation string) {
	c.violations.WithLabelValues(operation).Inc()
}
