package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"eca-density/internal/automaton"
	"eca-density/internal/core"
	"eca-density/internal/eval"
)

func newTraceCmd(opts *rootOptions) *cobra.Command {
	var (
		ruleParams map[string]string
		seed       uint64
		steps      int
		glyphs     bool
	)
	cmd := &cobra.Command{
		Use:   "trace <rule>",
		Short: "Print the space-time diagram of one seeded trial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			e := cfg.Experiment
			if !cmd.Flags().Changed("steps") {
				steps = e.MaxSteps
			}
			r, err := core.NewRule(args[0], e.Arity, ruleParams)
			if err != nil {
				return err
			}
			a, err := automaton.New(e.Size, e.Arity)
			if err != nil {
				return err
			}
			if err := a.BindRule(r); err != nil {
				return err
			}
			initial, err := eval.RandomConfiguration(e.Size, seed)
			if err != nil {
				return err
			}
			if err := a.SetConfiguration(initial); err != nil {
				return err
			}
			return trace(cmd.OutOrStdout(), a, steps, glyphs)
		},
	}
	cmd.Flags().StringToStringVar(&ruleParams, "param", nil, "rule parameter key=value (repeatable)")
	cmd.Flags().Uint64Var(&seed, "seed", eval.DefaultSeedSchedule.Seed(0), "seed for the initial configuration (0 is non-reproducible)")
	cmd.Flags().IntVar(&steps, "steps", 0, "maximum steps (default: configured max_steps)")
	cmd.Flags().BoolVar(&glyphs, "glyphs", false, "draw cells as '#' and '.' instead of 1 and 0")
	return cmd
}

// trace records the automaton's history until it becomes uniform or steps
// run out, then prints it oldest generation first.
func trace(w io.Writer, a *automaton.Automaton, steps int, glyphs bool) error {
	if steps < 0 {
		return fmt.Errorf("%w: steps %d", eval.ErrInvalidBudget, steps)
	}
	history := core.NewSpaceTime(a.Size(), steps+1)
	history.Push(a.Configuration())
	taken := 0
	for taken < steps && !a.AllZeros() && !a.AllOnes() {
		if err := a.Step(); err != nil {
			return err
		}
		taken++
		history.Push(a.Configuration())
	}

	for y := history.Len() - 1; y >= 0; y-- {
		row := core.FormatBits(history.Row(y))
		if glyphs {
			row = toGlyphs(row)
		}
		if _, err := fmt.Fprintf(w, "%4d %s\n", history.Len()-1-y, row); err != nil {
			return err
		}
	}
	switch {
	case a.AllZeros():
		fmt.Fprintf(w, "converged to 0 after %d steps\n", taken)
	case a.AllOnes():
		fmt.Fprintf(w, "converged to 1 after %d steps\n", taken)
	default:
		fmt.Fprintf(w, "no convergence within %d steps\n", taken)
	}
	return nil
}

func toGlyphs(bits string) string {
	out := []byte(bits)
	for i, c := range out {
		if c == '1' {
			out[i] = '#'
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
