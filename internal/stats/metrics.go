// Package stats bundles the Prometheus metrics a long-running sweep-sim
// driver exposes: one constructor that registers everything against a
// Registerer, tolerating double-registration so tests can build multiple
// runners against the default registry.
package stats

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the counters and histograms runner.RunOneTrial reports
// against, if a Collector is supplied via runner.WithCollector.
type Collector struct {
	TrialOutcomes    *prometheus.CounterVec
	SweepsToConverge prometheus.Histogram
	Timeouts         prometheus.Counter
}

// NewCollector registers sweep-decoder metrics against reg, defaulting to
// the global Prometheus registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sweepdecoder_trial_outcomes_total",
		Help: "Total number of completed trials, labeled by whether the sweep converged and whether the correction succeeded.",
	}, []string{"converged", "success"})
	outcomes, err := registerCounterVec(reg, outcomes, "sweepdecoder_trial_outcomes_total")
	if err != nil {
		return nil, err
	}

	sweeps, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sweepdecoder_sweeps_to_converge",
		Help:    "Number of readout sweeps a trial took before the syndrome cleared or the readout timeout was hit.",
		Buckets: prometheus.LinearBuckets(0, 5, 20),
	}), "sweepdecoder_sweeps_to_converge")
	if err != nil {
		return nil, err
	}

	timeouts, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sweepdecoder_timeouts_total",
		Help: "Total number of trials that hit the readout timeout without the syndrome clearing.",
	}), "sweepdecoder_timeouts_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		TrialOutcomes:    outcomes,
		SweepsToConverge: sweeps,
		Timeouts:         timeouts,
	}, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("stats: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("stats: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("stats: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

// Observe records the outcome of one completed trial.
func (c *Collector) Observe(converged, success bool, sweeps int) {
	if c == nil {
		return
	}
	c.TrialOutcomes.WithLabelValues(boolLabel(converged), boolLabel(success)).Inc()
	c.SweepsToConverge.Observe(float64(sweeps))
	if !converged {
		c.Timeouts.Inc()
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
