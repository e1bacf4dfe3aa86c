package eval

// Summary aggregates the results of a run.
type Summary struct {
	Accuracy            float64
	MeanConvergenceTime float64
	Correct             int
	Converged           int
	Trials              int
}

// Summarize computes accuracy over all results and the mean iteration count
// over converged results. When nothing converged the mean is maxSteps, so
// the metric is always defined.
func Summarize(results []Result, maxSteps int) Summary {
	s := Summary{Trials: len(results)}
	total := 0
	for _, r := range results {
		if r.Correct {
			s.Correct++
		}
		if r.Converged() {
			s.Converged++
			total += r.Iterations
		}
	}
	if s.Trials > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Trials)
	}
	s.MeanConvergenceTime = float64(maxSteps)
	if s.Converged > 0 {
		s.MeanConvergenceTime = float64(total) / float64(s.Converged)
	}
	return s
}
