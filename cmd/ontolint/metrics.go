package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/c360studio/ontolint/check"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ontolint_runs_total",
		Help: "Check runs executed, labelled by outcome.",
	}, []string{"outcome"})

	violationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ontolint_violations_total",
		Help: "Violations found across all check runs.",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ontolint_run_duration_seconds",
		Help:    "Duration of check runs, including graph loading.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeRun(run *check.Run, elapsed time.Duration) {
	outcome := "passed"
	if !run.Passed() {
		outcome = "failed"
	}
	runsTotal.WithLabelValues(outcome).Inc()
	violationsTotal.Add(float64(run.ViolationCount()))
	runDuration.Observe(elapsed.Seconds())
}
