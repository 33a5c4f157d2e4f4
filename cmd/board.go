// ABOUTME: Board command for the buildbuddy CLI
// ABOUTME: Prints a team's task board grouped by status column

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

var boardCmd = &cobra.Command{
	Use:   "board <team-id>",
	Short: "Show a team's task board",
	Long:  `Print the kanban board for a team, grouped into To Do, In Progress, and Done.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBoard(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

// runBoard prints the board for one team and returns an exit code
func runBoard(ctx context.Context, w io.Writer, rawID string) int {
	teamID, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid team id %q\n", rawID)
		return 2
	}

	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	tasks, err := c.Tasks(ctx, teamID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(tasks, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprint(w, formatBoardHuman(tasks))
	return 0
}

// formatBoardHuman groups tasks into status columns
func formatBoardHuman(tasks []client.Task) string {
	columns := []struct {
		status string
		title  string
	}{
		{client.TaskStatusTodo, "To Do"},
		{client.TaskStatusInProgress, "In Progress"},
		{client.TaskStatusDone, "Done"},
	}

	out := ""
	for _, col := range columns {
		out += col.title + ":\n"
		empty := true
		for _, t := range tasks {
			if t.Status != col.status {
				continue
			}
			empty = false
			line := fmt.Sprintf("  %-4d %s", t.ID, t.Title)
			if t.Priority != "" {
				line += "  (" + t.Priority + ")"
			}
			if t.AssignedToName != "" {
				line += "  -> " + t.AssignedToName
			}
			out += line + "\n"
		}
		if empty {
			out += "  (none)\n"
		}
		out += "\n"
	}
	return out
}
