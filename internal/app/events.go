package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/config"
	"github.com/likhithlanka/pulse/internal/output"
	"github.com/likhithlanka/pulse/internal/store"
)

var eventsFlagLimit int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the recent visitor event journal",
	Long: `List the most recent journaled visitor events, newest first. The
journal records every reported behavior event for the owner's review.

Examples:
  pulse events
  pulse events --limit 50
  pulse events --json`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().IntVar(&eventsFlagLimit, "limit", 25, "Maximum events to display")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	events, err := db.RecentVisitorEvents(eventsFlagLimit)
	if err != nil {
		return fmt.Errorf("reading event journal: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	if len(events) == 0 {
		fmt.Println(" No events journaled yet.")
		return nil
	}

	fmt.Println(output.Section("Visitor Events"))
	fmt.Println()

	tbl := output.NewTable("When", "Session", "Type", "Detail", "Value")
	for _, ev := range events {
		session := ev.SessionID
		if len(session) > 12 {
			session = session[:12]
		}
		value := ""
		if ev.Value != 0 {
			value = fmt.Sprintf("%.1f", ev.Value)
		}
		tbl.AddRow(
			ev.OccurredAt.Format("Jan 02 15:04:05"),
			output.StyleMuted.Render(session),
			output.StyleBold.Render(ev.EventType),
			ev.Section,
			value,
		)
	}
	tbl.Print()
	fmt.Println()

	return nil
}
