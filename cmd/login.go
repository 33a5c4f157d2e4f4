// ABOUTME: Login command for the buildbuddy CLI
// ABOUTME: Signs in with email and password and persists the session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to BuildBuddy",
	Long:  `Sign in with your email and password. The session token is stored locally so later commands stay signed in.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (or BUILDBUDDY_EMAIL)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (or BUILDBUDDY_PASSWORD)")
	rootCmd.AddCommand(loginCmd)
}

// runLogin executes the sign-in and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	email := loginEmail
	if email == "" {
		email = os.Getenv("BUILDBUDDY_EMAIL")
	}
	password := loginPassword
	if password == "" {
		password = os.Getenv("BUILDBUDDY_PASSWORD")
	}
	if email == "" || password == "" {
		fmt.Fprintln(w, "Error: --email and --password are required")
		return 2
	}

	mgr, _, err := newSession(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	user, err := mgr.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(user))
	} else {
		fmt.Fprintf(w, "Signed in as %s\n", user.DisplayName())
	}
	return 0
}

// formatUserJSON renders a profile as indented JSON
func formatUserJSON(user *client.User) string {
	data, _ := json.MarshalIndent(user, "", "  ")
	return string(data)
}
