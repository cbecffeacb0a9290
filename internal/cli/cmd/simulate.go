package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/winshell/internal/cli"
	"github.com/bnema/winshell/internal/cli/styles"
)

var (
	simulatePopups      int
	simulateDevtools    bool
	simulateSynchronous bool
	simulateJournal     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [url]",
	Short: "Run a headless window session",
	Long: `Open a root window on the headless host, let its page open a chain of
popups, print the window tree and close the root.

Examples:
  winshell simulate                          # root window only
  winshell simulate https://example.com -p 3 # three nested popups
  winshell simulate -p 2 --devtools          # inspector for every popup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&simulatePopups, "popups", "p", 0, "number of nested popups to open")
	simulateCmd.Flags().BoolVar(&simulateDevtools, "devtools", false, "open devtools for every popup")
	simulateCmd.Flags().BoolVar(&simulateSynchronous, "sync-teardown", false, "tear browsers down inside the close call")
	simulateCmd.Flags().BoolVar(&simulateJournal, "journal", true, "print the host event journal")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := *a.Config
	if len(args) == 1 {
		cfg.Launch.URL = args[0]
	}

	res, err := cli.Simulate(a.Ctx(), cli.SimulateOptions{
		Config:              &cfg,
		Popups:              simulatePopups,
		Devtools:            simulateDevtools,
		SynchronousTeardown: simulateSynchronous,
	})
	if err != nil {
		return err
	}

	r := styles.NewSessionRenderer(a.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n  %s %s\n", a.Theme.Highlight.Render(styles.IconGlobe), a.Theme.Subtle.Render(cfg.Launch.URL))
	fmt.Fprint(out, r.RenderTree("Window tree", res.Tree))
	if simulateJournal {
		fmt.Fprint(out, r.RenderJournal(res.Journal))
	}
	fmt.Fprint(out, r.RenderSummary(res.RemainingWindows, res.RemainingBrowsers))
	return nil
}
