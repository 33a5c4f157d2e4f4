// ABOUTME: Hackathons command group for the buildbuddy CLI
// ABOUTME: Lists events with filters and registers for them by id

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/spf13/cobra"
)

var (
	hackathonCategory string
	hackathonMode     string
	hackathonStatus   string
)

var hackathonsCmd = &cobra.Command{
	Use:   "hackathons",
	Short: "List hackathons",
	Long:  `List hackathons, optionally filtered by category, mode, or status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHackathons(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var hackathonsRegisterCmd = &cobra.Command{
	Use:   "register <hackathon-id>",
	Short: "Register for a hackathon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHackathonRegister(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	hackathonsCmd.Flags().StringVar(&hackathonCategory, "category", "", "Filter by category")
	hackathonsCmd.Flags().StringVar(&hackathonMode, "mode", "", "Filter by mode (in-person, remote, hybrid)")
	hackathonsCmd.Flags().StringVar(&hackathonStatus, "status", "", "Filter by status (upcoming, ongoing, completed)")
	hackathonsCmd.AddCommand(hackathonsRegisterCmd)
	rootCmd.AddCommand(hackathonsCmd)
}

// runHackathons lists events and returns an exit code
func runHackathons(ctx context.Context, w io.Writer) int {
	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	events, err := c.Hackathons(ctx, hackathonCategory, hackathonMode, hackathonStatus)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(events, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No hackathons found.")
		return 0
	}
	for _, ev := range events {
		fmt.Fprintln(w, formatHackathonLine(&ev))
	}
	return 0
}

// runHackathonRegister registers for one event by id
func runHackathonRegister(ctx context.Context, w io.Writer, rawID string) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid hackathon id %q\n", rawID)
		return 2
	}

	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	if err := c.RegisterForHackathon(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "Registered.")
	return 0
}

// formatHackathonLine renders one event as a single human-readable row
func formatHackathonLine(ev *client.Hackathon) string {
	line := fmt.Sprintf("%-4d %s", ev.ID, ev.Name)
	if ev.StartDate != "" {
		line += "  " + ev.StartDate
	}
	if ev.Mode != "" {
		line += "  (" + ev.Mode + ")"
	}
	if ev.Status != "" {
		line += "  [" + ev.Status + "]"
	}
	return line
}
