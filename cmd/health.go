// ABOUTME: Health command for the buildbuddy CLI
// ABOUTME: Checks backend connectivity

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

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the BuildBuddy backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the connectivity check and returns an exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Ping(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintf(w, "Backend: %s\nStatus:  %s\n", url, resp.Status)
	}
	return 0
}

// formatHealthJSON formats the health response as JSON
func formatHealthJSON(url string, resp *client.PingResponse) string {
	output := map[string]interface{}{
		"backend": url,
		"status":  resp.Status,
		"message": resp.Message,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
