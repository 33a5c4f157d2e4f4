// ABOUTME: Logout command for the buildbuddy CLI
// ABOUTME: Discards the stored session unconditionally

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long:  `Discard the stored session token. Always succeeds locally, even if the backend is unreachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(context.Background(), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns an exit code. No backend
// call is made, so signing out works offline.
func runLogout(ctx context.Context, w io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	mgr, _, err := newSessionWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	mgr.Logout()
	fmt.Fprintln(w, "Signed out.")
	return 0
}
