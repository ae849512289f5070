package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/config"
	"github.com/likhithlanka/pulse/internal/content"
	"github.com/likhithlanka/pulse/internal/cta"
	"github.com/likhithlanka/pulse/internal/engage"
	"github.com/likhithlanka/pulse/internal/output"
	"github.com/likhithlanka/pulse/internal/store"
)

var (
	ctaFlagSkills     float64
	ctaFlagProjects   float64
	ctaFlagExperience float64
	ctaFlagScroll     float64
	ctaFlagViewed     int
	ctaFlagDownloaded bool
	ctaFlagLinkedIn   bool
)

var ctaCmd = &cobra.Command{
	Use:   "cta",
	Short: "Evaluate call-to-action selection for a snapshot",
	Long: `Evaluate the option set against a hand-built behavior snapshot and show
which call to action would win. Persisted dismissals are applied, so
this mirrors exactly what a visitor with this behavior would see.

Examples:
  pulse cta --scroll 45
  pulse cta --time-skills 12 --time-experience 9
  pulse cta --scroll 65 --viewed 3 --downloaded`,
	RunE: runCTA,
}

func init() {
	ctaCmd.Flags().Float64Var(&ctaFlagSkills, "time-skills", 0, "Seconds spent on the skills section")
	ctaCmd.Flags().Float64Var(&ctaFlagProjects, "time-projects", 0, "Seconds spent on the projects section")
	ctaCmd.Flags().Float64Var(&ctaFlagExperience, "time-experience", 0, "Seconds spent on the experience section")
	ctaCmd.Flags().Float64Var(&ctaFlagScroll, "scroll", 0, "Maximum scroll depth in percent")
	ctaCmd.Flags().IntVar(&ctaFlagViewed, "viewed", 0, "Distinct project cards viewed")
	ctaCmd.Flags().BoolVar(&ctaFlagDownloaded, "downloaded", false, "Visitor already downloaded the resume")
	ctaCmd.Flags().BoolVar(&ctaFlagLinkedIn, "linkedin", false, "Visitor already opened LinkedIn")
	rootCmd.AddCommand(ctaCmd)
}

func runCTA(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	doc := content.NewStore(db.Content()).Get()
	opts := cta.Options(cta.Targets{
		LinkedInURL:    doc.Links.LinkedIn,
		ResumePath:     cfg.ResumePath,
		ScheduleURL:    cfg.ScheduleURL,
		ProjectsAnchor: "projects",
	})

	selector, err := cta.NewSelector(opts, db.Dismissals())
	if err != nil {
		return err
	}

	snap := engage.Snapshot{
		TimeOnSkills:        ctaFlagSkills,
		TimeOnProjects:      ctaFlagProjects,
		TimeOnExperience:    ctaFlagExperience,
		ScrollDepth:         ctaFlagScroll,
		ViewedProjects:      ctaFlagViewed,
		HasDownloadedResume: ctaFlagDownloaded,
		HasVisitedLinkedIn:  ctaFlagLinkedIn,
		PreferredTheme:      engage.ThemeLight,
	}

	chosen, found := selector.Select(snap)

	if flagJSON {
		out := struct {
			Snapshot engage.Snapshot `json:"snapshot"`
			Option   *cta.Option     `json:"option,omitempty"`
		}{Snapshot: snap}
		if found {
			out.Option = &chosen
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	fmt.Println(output.Section("Snapshot"))
	fmt.Println()
	bar := func(l string, v string) {
		fmt.Printf(" %s  %s\n", output.StyleLabel.Render(l), v)
	}
	bar("Scroll depth", output.PercentBar(snap.ScrollDepth, 20))
	bar("Skills dwell", output.DwellBar(snap.TimeOnSkills, 30, 20))
	bar("Projects dwell", output.DwellBar(snap.TimeOnProjects, 30, 20))
	bar("Experience dwell", output.DwellBar(snap.TimeOnExperience, 30, 20))
	bar("Projects viewed", output.StyleBold.Render(fmt.Sprintf("%d", snap.ViewedProjects)))

	fmt.Println(output.Section("Options"))
	fmt.Println()
	tbl := output.NewTable("ID", "Priority", "Eligible", "Dismissed")
	for _, opt := range opts {
		eligible := "no"
		if opt.Eligible(snap) {
			eligible = output.StyleSuccess.Render("yes")
		}
		dismissed := ""
		if selector.Dismissed(opt.ID) {
			dismissed = output.StyleWarning.Render("yes")
		}
		tbl.AddRow(opt.ID, fmt.Sprintf("%d", opt.Priority), eligible, dismissed)
	}
	tbl.Print()

	fmt.Println()
	if found {
		fmt.Printf(" %s %s\n", output.StyleBold.Render("Winner:"), output.StyleSuccess.Render(chosen.ID))
		fmt.Printf(" %s\n", output.StyleMuted.Render(fmt.Sprintf("%s · %s", chosen.Primary, chosen.Secondary)))
	} else {
		fmt.Printf(" %s\n", output.StyleMuted.Render("No option qualifies for this snapshot."))
	}
	fmt.Println()

	return nil
}
