// Package cmd provides Cobra CLI commands for tilepane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tilepane/internal/cli"
	"github.com/bnema/tilepane/internal/config"
	"github.com/bnema/tilepane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "tilepane",
		Short: "Recursive split pane layouts from plain text scripts",
		Long: `Tilepane - a recursive binary-split pane layout engine.

A layout is a tree of panes. Leaves are split into containers with
alternating directions, containers grow at either end, and closing a
pane collapses its parent when a single sibling is left.

Layouts are described as line-oriented scripts:

  root
  split 1 vertical
  split 3 horizontal
  resize 2 320 exact
  close 4

Use 'tilepane run' to apply a script and print the resulting tree, or
'tilepane watch' to re-render it every time the file changes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context.
			// Config subcommands must work even when config.toml is broken.
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}
			if cmd.Parent() == configCmd {
				return nil
			}

			var opts []config.ManagerOption
			if configDir != "" {
				opts = append(opts, config.WithConfigDir(configDir))
			}

			var err error
			app, err = cli.NewApp(opts...)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default: $XDG_CONFIG_HOME/tilepane)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
