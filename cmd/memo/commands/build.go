package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [goals...]",
		Short: "Run lifecycle phases or plugin goals, reusing cached builds",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			parallelism, _ := cmd.Flags().GetInt("threads")
			return c.app.Build(cmd.Context(), dir, app.BuildOptions{
				Goals:       args,
				Parallelism: parallelism,
				Overrides:   overrides(cmd),
			})
		},
	}
	cmd.Flags().IntP("threads", "T", 1, "Number of projects built in parallel")
	cmd.Flags().Bool("fail-fast", false, "Fail the build when a project cannot be restored from cache")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the build cache and run every execution")
	return cmd
}
