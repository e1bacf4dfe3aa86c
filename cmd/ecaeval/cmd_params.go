package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newParamsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range cfg.Parameters().Groups {
				fmt.Fprintf(w, "[%s]\n", g.Name)
				for _, p := range g.Params {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Key, p.Value, p.Label)
				}
				if g.Summary != "" {
					fmt.Fprintf(w, "  # %s\n", g.Summary)
				}
			}
			return w.Flush()
		},
	}
}
