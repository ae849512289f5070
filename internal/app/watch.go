package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/likhithlanka/pulse/internal/config"
	"github.com/likhithlanka/pulse/internal/output"
	"github.com/likhithlanka/pulse/internal/store"
	"github.com/likhithlanka/pulse/internal/watcher"
)

var (
	watchFlagInterval time.Duration
	watchFlagNotify   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the visitor journal and alert on engagement changes",
	Long: `Watch the visitor event journal and print an alert whenever something
notable happens: new visitors, resume downloads, LinkedIn follow-through,
deep reads, dismissals, or a traffic spike. Runs until interrupted.

Examples:
  pulse watch
  pulse watch --interval 10s
  pulse watch --notify     # desktop notifications too`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchFlagInterval, "interval", 30*time.Second, "Check interval")
	watchCmd.Flags().BoolVar(&watchFlagNotify, "notify", false, "Send desktop notifications")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	w := watcher.New(db, watchFlagInterval, func(a watcher.Alert) {
		printAlert(a)
		if watchFlagNotify {
			_ = watcher.Notify(a)
		}
	})

	fmt.Println(output.Section("Watching visitor activity"))
	fmt.Println()
	fmt.Printf(" %s\n\n", output.StyleMuted.Render(
		fmt.Sprintf("checking every %s · Ctrl-C to stop", watchFlagInterval)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printAlert(a watcher.Alert) {
	stamp := output.StyleMuted.Render(a.Time.Format("15:04:05"))

	level := a.Level
	switch a.Level {
	case "critical":
		level = output.StyleError.Render(level)
	case "warning":
		level = output.StyleWarning.Render(level)
	default:
		level = output.StyleSuccess.Render(level)
	}

	fmt.Printf(" %s  %s  %s  %s\n", stamp, level, output.StyleBold.Render(a.Title), a.Message)
}
