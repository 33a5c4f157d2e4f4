// ABOUTME: UI command launching the interactive terminal application
// ABOUTME: Wires the session manager and background syncer into the TUI

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/UtkarshAditya/BuildBuddy/internal/debuglog"
	"github.com/UtkarshAditya/BuildBuddy/internal/session"
	"github.com/UtkarshAditya/BuildBuddy/internal/syncer"
	"github.com/UtkarshAditya/BuildBuddy/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive UI",
	Long:  `Open the full-screen terminal UI for browsing, teams, boards, inbox and messages.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runUI()
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

// runUI starts the TUI and returns an exit code
func runUI() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.Debug {
		if err := debuglog.Init(cfg.ConfigDir); err == nil {
			defer debuglog.Close()
		}
	}

	mgr, c, err := newSessionWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	sync := syncer.New(c, time.Duration(cfg.PollInterval)*time.Second)

	// Polling must die with the session, whatever path signs the user out
	mgr.OnChange(func(state session.State) {
		if state != session.StateAuthenticated {
			sync.Stop()
		}
	})

	if err := tui.Run(c, mgr, sync); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
