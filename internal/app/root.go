// Package app contains the Cobra command tree for pulse.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/config"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Visitor-engagement engine for a portfolio site",
	Long: `pulse serves and inspects a portfolio site's engagement engine. It
tracks visitor behavior per session, picks the one call to action worth
showing, runs the social-proof feed, and renders the contribution
activity heat map.

Run 'pulse serve' to start the HTTP API, or use the inspection
subcommands against the local data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("pulse", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  serve     Start the HTTP API server")
		fmt.Println("  activity  Render the contribution heat map and streaks")
		fmt.Println("  repos     List the pinned GitHub repositories")
		fmt.Println("  profile   Show the repositories and contribution activity together")
		fmt.Println("  content   Show, replace, or reset the portfolio content")
		fmt.Println("  cta       Evaluate call-to-action selection for a snapshot")
		fmt.Println("  events    Show the recent visitor event journal")
		fmt.Println("  watch     Monitor the journal and alert on engagement changes")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveGitHubUser returns the explicit flag value, or the configured
// github_user when the flag is empty.
func resolveGitHubUser(flagUser string) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return cfg.GitHubUser, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/pulse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
