// Package cmd provides Cobra CLI commands for winshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/winshell/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "winshell",
		Short: "Window and popup lifecycle coordinator for embedded browsers",
		Long: `winshell keeps the tree of native windows that host embedded browser
content: root windows, the popups their pages open and the inspectors attached
to them, closing whole subtrees in a safe order.

Use 'winshell simulate' to drive a session against the headless host.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema", "path":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

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
