// ABOUTME: Browse command for the buildbuddy CLI
// ABOUTME: Searches for builders by name, skills, and availability

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/spf13/cobra"
)

var (
	browseSkills       string
	browseAvailability string
)

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Search for builders",
	Long:  `Search for hackathon builders by name, skills, or availability.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		exitCode := runBrowse(ctx, os.Stdout, query)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseSkills, "skills", "", "Filter by skills, comma separated")
	browseCmd.Flags().StringVar(&browseAvailability, "availability", "", "Filter by availability (available, looking, busy)")
	rootCmd.AddCommand(browseCmd)
}

// runBrowse searches users and returns an exit code
func runBrowse(ctx context.Context, w io.Writer, query string) int {
	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	users, err := c.SearchUsers(ctx, query, browseSkills, browseAvailability)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(users, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(users) == 0 {
		fmt.Fprintln(w, "No builders found.")
		return 0
	}
	for _, u := range users {
		fmt.Fprintln(w, formatUserLine(&u))
	}
	return 0
}

// formatUserLine renders one user as a single human-readable row
func formatUserLine(u *client.User) string {
	line := fmt.Sprintf("%-4d %s", u.ID, u.DisplayName())
	if len(u.Skills) > 0 {
		line += "  [" + strings.Join(u.Skills, ", ") + "]"
	}
	if u.Availability != "" {
		line += "  (" + u.Availability + ")"
	}
	return line
}
