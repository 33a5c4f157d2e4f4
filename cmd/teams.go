// ABOUTME: Teams command group for the buildbuddy CLI
// ABOUTME: Lists the viewer's teams and creates new ones from flags

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
	createTeamName        string
	createTeamDescription string
	createTeamCategory    string
	createTeamSkills      string
	createTeamSize        int
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List your teams",
	Long:  `List the teams you belong to.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTeams(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var teamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team",
	Long:  `Create a new team. You become its lead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTeamsCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	teamsCreateCmd.Flags().StringVar(&createTeamName, "name", "", "Team name (required)")
	teamsCreateCmd.Flags().StringVar(&createTeamDescription, "description", "", "What the team is building")
	teamsCreateCmd.Flags().StringVar(&createTeamCategory, "category", "", "Project category")
	teamsCreateCmd.Flags().StringVar(&createTeamSkills, "skills", "", "Required skills, comma separated")
	teamsCreateCmd.Flags().IntVar(&createTeamSize, "size", 0, "Target team size")
	teamsCmd.AddCommand(teamsCreateCmd)
	rootCmd.AddCommand(teamsCmd)
}

// runTeams lists the viewer's teams and returns an exit code
func runTeams(ctx context.Context, w io.Writer) int {
	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	list, err := c.MyTeams(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatTeamsJSON(list))
		return 0
	}

	if len(list) == 0 {
		fmt.Fprintln(w, "You're not on a team yet.")
		return 0
	}
	for _, team := range list {
		fmt.Fprintln(w, formatTeamLine(&team))
	}
	return 0
}

// runTeamsCreate creates a team from flags and returns an exit code
func runTeamsCreate(ctx context.Context, w io.Writer) int {
	if strings.TrimSpace(createTeamName) == "" {
		fmt.Fprintln(w, "Error: --name is required")
		return 2
	}

	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	var skills []string
	for _, s := range strings.Split(createTeamSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	team, err := c.CreateTeam(ctx, &client.TeamInput{
		Name:           createTeamName,
		Description:    createTeamDescription,
		Category:       createTeamCategory,
		RequiredSkills: skills,
		TeamSize:       createTeamSize,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(team, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Created team %q (id %d)\n", team.Name, team.ID)
	}
	return 0
}

// formatTeamLine renders one team as a single human-readable row
func formatTeamLine(team *client.Team) string {
	line := fmt.Sprintf("%-4d %s", team.ID, team.Name)
	if team.HackathonName != "" {
		line += " @ " + team.HackathonName
	}
	line += fmt.Sprintf("  (%d members", team.MemberCount)
	if team.OpenPositions > 0 {
		line += fmt.Sprintf(", %d open", team.OpenPositions)
	}
	return line + ")"
}

// formatTeamsJSON renders teams as indented JSON
func formatTeamsJSON(list []client.Team) string {
	data, _ := json.MarshalIndent(list, "", "  ")
	return string(data)
}
