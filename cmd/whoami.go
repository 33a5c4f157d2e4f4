// ABOUTME: Whoami command for the buildbuddy CLI
// ABOUTME: Shows the signed-in profile

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Long:  `Display the profile of the currently signed-in user.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the current profile and returns an exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	mgr, _, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	user := mgr.User()
	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(user))
		return 0
	}

	fmt.Fprintf(w, "Name:         %s\n", user.DisplayName())
	fmt.Fprintf(w, "Email:        %s\n", user.Email)
	if user.Role != "" {
		fmt.Fprintf(w, "Role:         %s\n", user.Role)
	}
	if len(user.Skills) > 0 {
		fmt.Fprintf(w, "Skills:       %s\n", strings.Join(user.Skills, ", "))
	}
	if user.Availability != "" {
		fmt.Fprintf(w, "Availability: %s\n", user.Availability)
	}
	return 0
}
