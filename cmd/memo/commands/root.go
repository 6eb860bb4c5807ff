// Package commands implements the CLI commands for the memo build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/app"
	"go.trai.ch/memo/internal/build"
	"go.trai.ch/memo/internal/core/ports"
)

// configurableLogger is implemented by loggers whose output can be tuned from flags.
type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for memo.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "memo",
		Short:         "A build cache for multi-module lifecycle builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("memo version {{.Version}} (commit %s, built %s)\n", build.Commit, build.Date))

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("debug", "X", false, "Print debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Write log records as JSON")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path of the cache configuration file")
	rootCmd.PersistentFlags().Bool("offline", false, "Do not contact the remote cache")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = c.configureLogger

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newKeyCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newPurgeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) {
	l, ok := c.logger.(configurableLogger)
	if !ok {
		return
	}
	debug, _ := cmd.Flags().GetBool("debug")
	asJSON, _ := cmd.Flags().GetBool("json")
	l.SetVerbose(debug)
	l.SetJSON(asJSON)
}

// overrides collects the cache configuration overrides given on the command line.
func overrides(cmd *cobra.Command) map[string]any {
	values := make(map[string]any)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		values[config.ConfigPathKey] = path
	}
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		values["remote.enabled"] = false
	}
	if f := cmd.Flags().Lookup("fail-fast"); f != nil && f.Changed {
		values["failFast"] = f.Value.String() == "true"
	}
	if f := cmd.Flags().Lookup("no-cache"); f != nil && f.Changed && f.Value.String() == "true" {
		values["enabled"] = false
	}
	return values
}

// SetOutput redirects command output and errors. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
