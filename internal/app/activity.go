package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/activity"
	"github.com/likhithlanka/pulse/internal/github"
	"github.com/likhithlanka/pulse/internal/output"
)

var (
	activityFlagUser string
	activityFlagReal bool
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Render the contribution heat map and streaks",
	Long: `Render one year of contribution activity as a terminal heat map with
the derived totals and streaks.

By default the data is synthesized. Pass --real to fetch the actual
contribution calendar; on fetch failure the view silently falls back to
synthesized data.

Examples:
  pulse activity                   # synthesized year
  pulse activity --real            # fetch the real calendar
  pulse activity --real --user me  # another GitHub login
  pulse activity --json            # machine output`,
	RunE: runActivity,
}

func init() {
	activityCmd.Flags().StringVar(&activityFlagUser, "user", "", "GitHub login to fetch (default: configured github_user)")
	activityCmd.Flags().BoolVar(&activityFlagReal, "real", false, "Fetch the real contribution calendar")
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, args []string) error {
	user, err := resolveGitHubUser(activityFlagUser)
	if err != nil {
		return err
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	loader := activity.NewLoader(github.NewClient())
	days, stats := loader.Load(context.Background(), user, activityFlagReal)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Days  []activity.Day `json:"days"`
			Stats activity.Stats `json:"stats"`
		}{days, stats})
	}

	renderActivity(days, stats)
	return nil
}

func renderActivity(days []activity.Day, stats activity.Stats) {
	fmt.Println(output.Section("Contribution Activity"))
	fmt.Println()

	weeks := activity.Weeks(days)
	grid := make([][]int, len(weeks))
	for i, week := range weeks {
		row := make([]int, len(week))
		for j, day := range week {
			if day.Placeholder() {
				row[j] = -1
			} else {
				row[j] = day.Level
			}
		}
		grid[i] = row
	}
	fmt.Print(output.Heatmap(grid))

	fmt.Println()
	label := func(l, v string) {
		fmt.Printf(" %s  %s\n", output.StyleLabel.Render(l), output.StyleBold.Render(v))
	}
	label("Total contributions", fmt.Sprintf("%d", stats.Total))
	label("Longest streak", fmt.Sprintf("%d days", stats.LongestStreak))
	label("Current streak", fmt.Sprintf("%d days", stats.CurrentStreak))
	label("Daily average", fmt.Sprintf("%.2f", stats.AveragePerDay))
	fmt.Println()
}
