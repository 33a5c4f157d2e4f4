// ABOUTME: Profile command for the buildbuddy CLI
// ABOUTME: Shows and edits the signed-in user's profile

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	profileFullName     string
	profileBio          string
	profileLocation     string
	profileSkills       string
	profileExperience   string
	profileAvailability string
	profileGithub       string
	profileLinkedin     string
	profilePortfolio    string
)

var profileCmd = &cobra.Command{
	Use:   "profile [user-id]",
	Short: "Show a profile",
	Long: `Display the full profile of the currently signed-in user, or of
another builder when a user id is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		rawID := ""
		if len(args) > 0 {
			rawID = args[0]
		}
		exitCode := runProfile(ctx, os.Stdout, rawID)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Long: `Update fields on your profile. Only the flags you pass are changed;
everything else is left as it is.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		fields := map[string]interface{}{}
		set := func(flag, key string, value interface{}) {
			if cmd.Flags().Changed(flag) {
				fields[key] = value
			}
		}
		set("full-name", "full_name", profileFullName)
		set("bio", "bio", profileBio)
		set("location", "location", profileLocation)
		set("experience", "experience", profileExperience)
		set("availability", "availability", profileAvailability)
		set("github", "github_url", profileGithub)
		set("linkedin", "linkedin_url", profileLinkedin)
		set("portfolio", "portfolio_url", profilePortfolio)
		if cmd.Flags().Changed("skills") {
			fields["skills"] = splitSkills(profileSkills)
		}

		exitCode := runProfileEdit(ctx, os.Stdout, fields)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&profileFullName, "full-name", "", "Display name")
	profileEditCmd.Flags().StringVar(&profileBio, "bio", "", "Short bio")
	profileEditCmd.Flags().StringVar(&profileLocation, "location", "", "Location")
	profileEditCmd.Flags().StringVar(&profileSkills, "skills", "", "Comma-separated skill list")
	profileEditCmd.Flags().StringVar(&profileExperience, "experience", "", "Experience level")
	profileEditCmd.Flags().StringVar(&profileAvailability, "availability", "", "available, looking, or busy")
	profileEditCmd.Flags().StringVar(&profileGithub, "github", "", "GitHub URL")
	profileEditCmd.Flags().StringVar(&profileLinkedin, "linkedin", "", "LinkedIn URL")
	profileEditCmd.Flags().StringVar(&profilePortfolio, "portfolio", "", "Portfolio URL")
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

// splitSkills turns a comma-separated flag value into a trimmed list
func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// runProfile prints a full profile and returns an exit code. An empty
// rawID means the signed-in user's own profile.
func runProfile(ctx context.Context, w io.Writer, rawID string) int {
	mgr, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	user := mgr.User()
	if rawID != "" {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			fmt.Fprintf(w, "Error: invalid user id %q\n", rawID)
			return 2
		}
		user, err = c.GetUser(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(user))
		return 0
	}

	fmt.Fprintf(w, "Name:         %s\n", user.DisplayName())
	fmt.Fprintf(w, "Email:        %s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(w, "Bio:          %s\n", user.Bio)
	}
	if user.Location != "" {
		fmt.Fprintf(w, "Location:     %s\n", user.Location)
	}
	if len(user.Skills) > 0 {
		fmt.Fprintf(w, "Skills:       %s\n", strings.Join(user.Skills, ", "))
	}
	if user.Experience != "" {
		fmt.Fprintf(w, "Experience:   %s\n", user.Experience)
	}
	if user.Availability != "" {
		fmt.Fprintf(w, "Availability: %s\n", user.Availability)
	}
	if user.GithubURL != "" {
		fmt.Fprintf(w, "GitHub:       %s\n", user.GithubURL)
	}
	if user.LinkedinURL != "" {
		fmt.Fprintf(w, "LinkedIn:     %s\n", user.LinkedinURL)
	}
	if user.PortfolioURL != "" {
		fmt.Fprintf(w, "Portfolio:    %s\n", user.PortfolioURL)
	}
	return 0
}

// runProfileEdit sends the changed fields and returns an exit code
func runProfileEdit(ctx context.Context, w io.Writer, fields map[string]interface{}) int {
	if len(fields) == 0 {
		fmt.Fprintln(w, "Error: nothing to change (pass at least one flag)")
		return 2
	}

	_, c, err := requireAuth(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return authExitCode(err)
	}

	user, err := c.UpdateProfile(ctx, fields)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(user))
		return 0
	}
	fmt.Fprintf(w, "Profile updated for %s\n", user.DisplayName())
	return 0
}
