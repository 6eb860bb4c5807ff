package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print the cache key of every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			keys, err := c.app.Keys(cmd.Context(), dir, overrides(cmd))
			if err != nil {
				return err
			}
			for _, key := range keys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", key.Project, key.Checksum)
			}
			return nil
		},
	}
}
