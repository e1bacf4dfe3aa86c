package eval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eca-density/internal/automaton"
	"eca-density/internal/core"
	"eca-density/internal/rule"
)

// Params fixes the shape of an evaluation run.
type Params struct {
	Size      int
	MaxSteps  int
	Threshold float64
	Trials    int
	Workers   int
	Seeds     SeedSchedule
}

// Validate checks the parameters before any trial runs.
func (p Params) Validate() error {
	switch {
	case p.Size <= 0:
		return fmt.Errorf("%w: size %d", core.ErrNonPositiveSize, p.Size)
	case p.MaxSteps < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidBudget, p.MaxSteps)
	case p.Threshold < 0 || p.Threshold > 1:
		return fmt.Errorf("%w: got %g", ErrInvalidThreshold, p.Threshold)
	case p.Trials <= 0:
		return fmt.Errorf("%w: trials %d", core.ErrNonPositiveSize, p.Trials)
	case p.Seeds.Offset == 0:
		return fmt.Errorf("%w: seed offset must be non-zero", core.ErrInvalidParameter)
	}
	return nil
}

// Report is everything a run hands to its Persister.
type Report struct {
	RunID       string
	Name        string
	Fingerprint string
	Arity       int
	Params      Params
	Summary     Summary
	Trials      []Result
	Started     time.Time
	Elapsed     time.Duration
}

// Persister stores finished reports.
type Persister interface {
	Save(ctx context.Context, r *Report) error
}

// Harness runs batches of seeded trials.
type Harness struct {
	params    Params
	logger    *slog.Logger
	persister Persister
}

// Option customizes a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for run and trial events.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithPersister sets where finished reports are saved.
func WithPersister(p Persister) Option {
	return func(h *Harness) { h.persister = p }
}

// NewHarness validates p and returns a Harness.
func NewHarness(p Params, opts ...Option) (*Harness, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Workers < 1 {
		p.Workers = 1
	}
	h := &Harness{params: p, logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Params returns the effective parameters.
func (h *Harness) Params() Params { return h.params }

// Run evaluates the rule bound to a on Trials seeded configurations and
// saves the report. With one worker the trials run on a itself; otherwise
// each worker owns a clone and trials are striped across workers by index.
// Either way the report lists trials in index order with identical values.
// A failing trial aborts the run and nothing is persisted.
func (h *Harness) Run(ctx context.Context, name string, a *automaton.Automaton) (*Report, error) {
	if a.Size() != h.params.Size {
		return nil, fmt.Errorf("%w: automaton has %d cells, run expects %d", core.ErrSizeMismatch, a.Size(), h.params.Size)
	}
	r := a.Rule()
	if r == nil {
		return nil, core.ErrNoRule
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Name:        name,
		Fingerprint: rule.Encode(r),
		Arity:       a.Arity(),
		Params:      h.params,
		Started:     time.Now(),
	}
	log := h.logger.With("run_id", report.RunID, "rule", name)
	log.Info("evaluation started",
		"size", h.params.Size,
		"arity", a.Arity(),
		"max_steps", h.params.MaxSteps,
		"threshold", h.params.Threshold,
		"trials", h.params.Trials,
		"workers", h.params.Workers)

	results := make([]Result, h.params.Trials)
	workers := min(h.params.Workers, h.params.Trials)
	if workers == 1 {
		if err := h.runStripe(log, a, results, 0, 1); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group
		for w := 0; w < workers; w++ {
			local := a.Clone()
			g.Go(func() error {
				return h.runStripe(log, local, results, w, workers)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	report.Trials = results
	report.Summary = Summarize(results, h.params.MaxSteps)
	report.Elapsed = time.Since(report.Started)
	observeRun(name, results, report.Summary, report.Elapsed)

	log.Info("evaluation finished",
		"accuracy", report.Summary.Accuracy,
		"mean_convergence_time", report.Summary.MeanConvergenceTime,
		"converged", report.Summary.Converged,
		"elapsed", report.Elapsed.Round(time.Millisecond))

	if h.persister != nil {
		if err := h.persister.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("save report for %q: %w", name, err)
		}
	}
	return report, nil
}

// runStripe evaluates trials first, first+stride, ... on a.
func (h *Harness) runStripe(log *slog.Logger, a *automaton.Automaton, results []Result, first, stride int) error {
	for i := first; i < len(results); i += stride {
		res, err := h.trial(a, i)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		results[i] = res
		log.Debug("trial finished",
			"index", i,
			"density", res.InitialDensity,
			"iterations", res.Iterations,
			"empty", res.ConvergedToEmpty,
			"full", res.ConvergedToFull,
			"correct", res.Correct)
	}
	return nil
}

func (h *Harness) trial(a *automaton.Automaton, index int) (Result, error) {
	initial, err := RandomConfiguration(h.params.Size, h.params.Seeds.Seed(index))
	if err != nil {
		return Result{}, err
	}
	density, err := core.Density(initial)
	if err != nil {
		return Result{}, err
	}
	if err := a.SetConfiguration(initial); err != nil {
		return Result{}, err
	}
	res, err := Evaluate(a, h.params.MaxSteps, h.params.Threshold)
	if err != nil {
		return Result{}, err
	}
	res.InitialDensity = density
	res.InitialConfiguration = core.FormatBits(initial)
	return res, nil
}
