package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/activity"
	"github.com/likhithlanka/pulse/internal/github"
	"github.com/likhithlanka/pulse/internal/output"
)

var profileFlagUser string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the repositories and contribution activity together",
	Long: `Fetch the repository listing and the contribution calendar in one go
and render both. The two fetches run concurrently and degrade
independently: when one fails the other is still shown.

Examples:
  pulse profile
  pulse profile --user someone
  pulse profile --json`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileFlagUser, "user", "", "GitHub login to fetch (default: configured github_user)")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	user, err := resolveGitHubUser(profileFlagUser)
	if err != nil {
		return err
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	summary, raw, err := github.NewClient().Profile(context.Background(), user)
	if summary == nil && raw == nil {
		return fmt.Errorf("fetching profile for %s: %w", user, err)
	}
	if err != nil {
		log.Printf("partial profile for %s: %v", user, err)
	}

	days := activity.Normalize(raw)
	var stats *activity.Stats
	if days != nil {
		s := activity.ComputeStats(days)
		stats = &s
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Repos *github.RepoSummary `json:"repos,omitempty"`
			Days  []activity.Day      `json:"days,omitempty"`
			Stats *activity.Stats     `json:"stats,omitempty"`
		}{summary, days, stats})
	}

	fmt.Println(output.Section("GitHub Profile"))
	fmt.Println()

	if summary != nil {
		renderRepoSummary(summary)
	} else {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Repository listing unavailable"))
	}

	if days != nil {
		renderActivity(days, *stats)
	} else {
		fmt.Printf(" %s\n", output.StyleMuted.Render("Contribution calendar unavailable"))
	}

	return nil
}
