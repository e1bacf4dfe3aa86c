// Package eval scores local rules on the density-classification task.
//
// Evaluate drives a single automaton through a bounded number of steps and
// reports whether it converged to the uniform state that matches its
// initial density. A Harness runs many such trials from reproducible seeds,
// summarizes them and hands the resulting Report to a Persister.
package eval
