package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/config"
	"github.com/likhithlanka/pulse/internal/content"
	"github.com/likhithlanka/pulse/internal/output"
	"github.com/likhithlanka/pulse/internal/store"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Show, replace, or reset the portfolio content",
	Long: `Inspect and manage the portfolio content document. The document is a
single unit: set replaces it wholesale from a JSON file, and reset
discards any override and reverts to the built-in defaults.

Examples:
  pulse content show
  pulse content show --json
  pulse content set edited.json
  pulse content reset`,
}

var contentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current content document",
	RunE:  runContentShow,
}

var contentSetCmd = &cobra.Command{
	Use:   "set <file.json>",
	Short: "Replace the content document from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentSet,
}

var contentResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the override and revert to defaults",
	RunE:  runContentReset,
}

func init() {
	contentCmd.AddCommand(contentShowCmd, contentSetCmd, contentResetCmd)
	rootCmd.AddCommand(contentCmd)
}

func openContentStore() (*content.Store, *store.DB, error) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return content.NewStore(db.Content()), db, nil
}

func runContentShow(cmd *cobra.Command, args []string) error {
	cs, db, err := openContentStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	doc := cs.Get()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	fmt.Println(output.Section("Portfolio Content"))
	fmt.Println()
	label := func(l, v string) {
		fmt.Printf(" %s  %s\n", output.StyleLabel.Render(l), output.StyleBold.Render(v))
	}
	label("Hero title", doc.Hero.Title)
	label("Hero subtitle", doc.Hero.Subtitle)
	label("About title", doc.About.Title)
	label("LinkedIn", doc.Links.LinkedIn)
	label("GitHub", doc.Links.GitHub)
	label("Resume", doc.Links.Resume)
	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render("Use --json for the full document"))
	return nil
}

func runContentSet(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var doc content.Content
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	cs, db, err := openContentStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := cs.Set(doc); err != nil {
		return err
	}
	fmt.Println("Content replaced.")
	return nil
}

func runContentReset(cmd *cobra.Command, args []string) error {
	cs, db, err := openContentStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := cs.Reset(); err != nil {
		return err
	}
	fmt.Println("Content reset to defaults.")
	return nil
}
