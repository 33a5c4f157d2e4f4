// ABOUTME: Root command for the buildbuddy CLI
// ABOUTME: Handles global flags, configuration, and session setup for subcommands

package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
	"github.com/UtkarshAditya/BuildBuddy/internal/config"
	"github.com/UtkarshAditya/BuildBuddy/internal/logger"
	"github.com/UtkarshAditya/BuildBuddy/internal/session"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "buildbuddy",
	Short: "Terminal client for BuildBuddy",
	Long: `buildbuddy is a terminal client for the BuildBuddy team-matching platform.

Find hackathon teammates, manage your teams and task boards, and keep up
with invitations and messages without leaving the terminal.

Run without arguments to open the interactive UI.

Environment Variables:
  BUILDBUDDY_API_URL        Backend API URL (default: http://localhost:8000/api)
  BUILDBUDDY_CONFIG_DIR     Where credentials and prefs are stored
  BUILDBUDDY_POLL_INTERVAL  Seconds between badge polls (default: 30)`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runUI()
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// Execute runs the root command
func Execute() error {
	logger.Init()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides BUILDBUDDY_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("BUILDBUDDY_API_URL"); envURL != "" {
		return envURL
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadConfig resolves all runtime settings for this invocation
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(session.DefaultConfigDir())
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return cfg, nil
}

// newSessionWithConfig builds a client and credential-backed session
// manager without validating stored credentials. The TUI validates
// them itself during startup.
func newSessionWithConfig(cfg *config.Config) (*session.Manager, *client.Client, error) {
	c := client.New(cfg.APIURL)
	store := session.NewStore(cfg.ConfigDir)
	return session.NewManager(c, store), c, nil
}

// newSession builds a client and credential-backed session manager.
// Stored credentials are validated; callers that need an authenticated
// session should check mgr.Authenticated afterwards.
func newSession(ctx context.Context) (*session.Manager, *client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	mgr, c, err := newSessionWithConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	_ = mgr.Init(ctx)
	return mgr, c, nil
}

// errNotSignedIn marks the domain refusal exit path (code 1), as opposed
// to config and transport failures (code 2)
var errNotSignedIn = errors.New("not signed in (run 'buildbuddy login' first)")

// requireAuth is newSession plus an error when nobody is signed in
func requireAuth(ctx context.Context) (*session.Manager, *client.Client, error) {
	mgr, c, err := newSession(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !mgr.Authenticated() {
		return nil, nil, errNotSignedIn
	}
	return mgr, c, nil
}

// authExitCode maps a requireAuth failure to the scripting exit code
func authExitCode(err error) int {
	if errors.Is(err, errNotSignedIn) {
		return 1
	}
	return 2
}
