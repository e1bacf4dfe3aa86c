package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eca-density/internal/core"
	"eca-density/internal/rule"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List registered rules and their fingerprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			arity := cfg.Experiment.Arity
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "RULE\tFINGERPRINT (v=%d)\n", arity)
			for _, name := range core.RuleNames() {
				r, err := core.NewRule(name, arity, nil)
				if err != nil {
					fmt.Fprintf(w, "%s\tunavailable: %v\n", name, err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", name, rule.Encode(r))
			}
			return w.Flush()
		},
	}
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var ruleParams map[string]string
	cmd := &cobra.Command{
		Use:   "encode <rule>",
		Short: "Print the canonical fingerprint of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			r, err := core.NewRule(args[0], cfg.Experiment.Arity, ruleParams)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rule.Encode(r))
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&ruleParams, "param", nil, "rule parameter key=value (repeatable)")
	return cmd
}
