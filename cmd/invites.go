// ABOUTME: Invites command group for the buildbuddy CLI
// ABOUTME: Lists pending invitations and accepts or declines them by id

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

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "List pending team invitations",
	Long:  `List invitations other teams have sent you. Accepted and declined invitations are not shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runInvites(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var invitesAcceptCmd = &cobra.Command{
	Use:   "accept <invite-id>",
	Short: "Accept an invitation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runInviteDecision(ctx, os.Stdout, args[0], true)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var invitesRejectCmd = &cobra.Command{
	Use:   "reject <invite-id>",
	Short: "Decline an invitation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runInviteDecision(ctx, os.Stdout, args[0], false)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	invitesCmd.AddCommand(invitesAcceptCmd)
	invitesCmd.AddCommand(invitesRejectCmd)
	rootCmd.AddCommand(invitesCmd)
}

// runInvites lists pending invitations and returns an exit code
func runInvites(ctx context.Context, w io.Writer) int {
	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	invites, err := c.MyInvites(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	pending := invites[:0]
	for _, inv := range invites {
		if inv.Status == client.InviteStatusInvited {
			pending = append(pending, inv)
		}
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(pending, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(pending) == 0 {
		fmt.Fprintln(w, "No pending invitations.")
		return 0
	}
	for _, inv := range pending {
		line := fmt.Sprintf("%-4d %s invited you to %s", inv.ID, inv.InviterName, inv.TeamName)
		if inv.TimeAgo != "" {
			line += "  (" + inv.TimeAgo + ")"
		}
		fmt.Fprintln(w, line)
	}
	return 0
}

// runInviteDecision accepts or rejects one invitation by id
func runInviteDecision(ctx context.Context, w io.Writer, rawID string, accept bool) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid invite id %q\n", rawID)
		return 2
	}

	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	if accept {
		err = c.AcceptInvite(ctx, id)
	} else {
		err = c.RejectInvite(ctx, id)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if accept {
		fmt.Fprintln(w, "Invitation accepted.")
	} else {
		fmt.Fprintln(w, "Invitation declined.")
	}
	return 0
}
