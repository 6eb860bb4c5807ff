package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Compare every project with its baseline build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			reports, err := c.app.Diff(cmd.Context(), dir, overrides(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, report := range reports {
				_, _ = fmt.Fprintf(out, "%s: %d mismatches\n", report.Project, len(report.Mismatches))
				for _, m := range report.Mismatches {
					_, _ = fmt.Fprintf(out, "  %s: %s (current %q, baseline %q)\n", m.Item, m.Reason, m.Current, m.Baseline)
				}
			}
			return nil
		},
	}
}
