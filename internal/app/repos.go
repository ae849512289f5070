package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/github"
	"github.com/likhithlanka/pulse/internal/output"
)

var reposFlagUser string

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the pinned GitHub repositories",
	Long: `Fetch the GitHub repository listing the portfolio shows: the six most
recently updated repositories plus star and fork totals over the whole
account.

Examples:
  pulse repos
  pulse repos --user someone
  pulse repos --json`,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().StringVar(&reposFlagUser, "user", "", "GitHub login to fetch (default: configured github_user)")
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	user, err := resolveGitHubUser(reposFlagUser)
	if err != nil {
		return err
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	summary, err := github.NewClient().Repos(context.Background(), user)
	if err != nil {
		return fmt.Errorf("fetching repositories: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Println(output.Section("GitHub Repositories"))
	fmt.Println()
	renderRepoSummary(summary)

	return nil
}

func renderRepoSummary(summary *github.RepoSummary) {
	fmt.Printf(" %s\n\n", output.StyleMuted.Render(fmt.Sprintf(
		"%d repositories · %d stars · %d forks",
		summary.TotalRepos, summary.TotalStars, summary.TotalForks,
	)))

	tbl := output.NewTable("Name", "Language", "Stars", "Forks", "Description")
	for _, r := range summary.Repos {
		tbl.AddRow(
			output.StyleBold.Render(r.Name),
			r.Language,
			fmt.Sprintf("%d", r.Stars),
			fmt.Sprintf("%d", r.Forks),
			output.StyleMuted.Render(truncate(r.Description, 48)),
		)
	}
	tbl.Print()
	fmt.Println()
}

// truncate shortens s to at most n runes, appending an ellipsis. Counting
// runes keeps multi-byte descriptions from being cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
