// ABOUTME: Register command for the buildbuddy CLI
// ABOUTME: Creates an account and signs straight in

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerUsername string
	registerFullName string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a BuildBuddy account",
	Long:  `Create a new account and sign in with it. Passwords must be at least 8 characters.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Unique username")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Display name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	rootCmd.AddCommand(registerCmd)
}

// runRegister executes account creation and returns an exit code
func runRegister(ctx context.Context, w io.Writer) int {
	mgr, _, err := newSession(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	user, err := mgr.Register(ctx, registerEmail, registerUsername, registerPassword, registerFullName)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(user))
	} else {
		fmt.Fprintf(w, "Welcome, %s! You are signed in.\n", user.DisplayName())
	}
	return 0
}
