package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
)

func (c *CLI) newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete the cached builds of the reactor projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Purge(cmd.Context(), dir, app.PurgeOptions{All: all, Overrides: overrides(cmd)})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Delete the whole local cache")
	return cmd
}
