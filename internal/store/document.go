// Package store persists evaluation reports.
package store

import (
	"time"

	"eca-density/internal/eval"
)

// Document is the serialized form of a report shared by the file formats.
type Document struct {
	RunID       string     `json:"run_id" yaml:"run_id"`
	Name        string     `json:"eca_name" yaml:"eca_name"`
	EncodedRule string     `json:"encoded_rule" yaml:"encoded_rule"`
	Parameters  Parameters `json:"parameters" yaml:"parameters"`
	Metrics     Metrics    `json:"metrics" yaml:"metrics"`
	Trials      []Trial    `json:"trials" yaml:"trials"`
	StartedAt   time.Time  `json:"started_at" yaml:"started_at"`
	ElapsedMs   int64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Parameters records the run shape so results can be compared later.
type Parameters struct {
	Size           int     `json:"n" yaml:"n"`
	Arity          int     `json:"v" yaml:"v"`
	MaxSteps       int     `json:"m" yaml:"m"`
	Threshold      float64 `json:"d" yaml:"d"`
	Trials         int     `json:"s" yaml:"s"`
	SeedMultiplier uint64  `json:"seed_multiplier" yaml:"seed_multiplier"`
	SeedOffset     uint64  `json:"seed_offset" yaml:"seed_offset"`
}

// Metrics holds the summary statistics.
type Metrics struct {
	Accuracy            float64 `json:"accuracy" yaml:"accuracy"`
	MeanConvergenceTime float64 `json:"mean_convergence_time" yaml:"mean_convergence_time"`
}

// Trial is one per-trial record.
type Trial struct {
	InitialConfiguration string  `json:"initial_configuration" yaml:"initial_configuration"`
	InitialDensity       float64 `json:"initial_density" yaml:"initial_density"`
	Iterations           int     `json:"iterations" yaml:"iterations"`
	ConvergedToEmpty     bool    `json:"converged_to_empty" yaml:"converged_to_empty"`
	ConvergedToFull      bool    `json:"converged_to_full" yaml:"converged_to_full"`
	Correct              bool    `json:"correct" yaml:"correct"`
}

// NewDocument converts a report into its serialized form.
func NewDocument(r *eval.Report) Document {
	doc := Document{
		RunID:       r.RunID,
		Name:        r.Name,
		EncodedRule: r.Fingerprint,
		Parameters: Parameters{
			Size:           r.Params.Size,
			Arity:          r.Arity,
			MaxSteps:       r.Params.MaxSteps,
			Threshold:      r.Params.Threshold,
			Trials:         r.Params.Trials,
			SeedMultiplier: r.Params.Seeds.Multiplier,
			SeedOffset:     r.Params.Seeds.Offset,
		},
		Metrics: Metrics{
			Accuracy:            r.Summary.Accuracy,
			MeanConvergenceTime: r.Summary.MeanConvergenceTime,
		},
		Trials:    make([]Trial, len(r.Trials)),
		StartedAt: r.Started.UTC(),
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
	for i, t := range r.Trials {
		doc.Trials[i] = Trial{
			InitialConfiguration: t.InitialConfiguration,
			InitialDensity:       t.InitialDensity,
			Iterations:           t.Iterations,
			ConvergedToEmpty:     t.ConvergedToEmpty,
			ConvergedToFull:      t.ConvergedToFull,
			Correct:              t.Correct,
		}
	}
	return doc
}
