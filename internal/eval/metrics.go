package eval

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// trialsTotal counts finished trials by rule and outcome
	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eca_trials_total",
		Help: "Total evaluated trials by rule and outcome",
	}, []string{"rule", "outcome"}) // "correct", "wrong_state" or "not_converged"

	trialIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eca_trial_iterations",
		Help:    "Steps taken per trial",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
	}, []string{"rule"})

	runAccuracy = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eca_run_accuracy",
		Help: "Accuracy of the most recent run",
	}, []string{"rule"})

	runMeanConvergence = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eca_run_mean_convergence_steps",
		Help: "Mean convergence time of the most recent run",
	}, []string{"rule"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eca_run_duration_seconds",
		Help:    "Wall time of an evaluation run",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"rule"})
)

func outcome(r Result) string {
	switch {
	case r.Correct:
		return "correct"
	case r.Converged():
		return "wrong_state"
	default:
		return "not_converged"
	}
}

func observeRun(name string, results []Result, s Summary, elapsed time.Duration) {
	for _, r := range results {
		trialsTotal.WithLabelValues(name, outcome(r)).Inc()
		trialIterations.WithLabelValues(name).Observe(float64(r.Iterations))
	}
	runAccuracy.WithLabelValues(name).Set(s.Accuracy)
	runMeanConvergence.WithLabelValues(name).Set(s.MeanConvergenceTime)
	runDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
