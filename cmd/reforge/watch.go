package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"reforge/internal/watch"
)

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet window before a change triggers a rebuild")
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rebuild whenever the manifest changes",
	Long:  "Watch reforge.toml for modifications and run a rebuild after every change, until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	baseDir := ""
	if len(args) > 0 {
		baseDir = args[0]
	}
	p, err := loadPipeline(cmd, baseDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quiet := readQuiet(cmd)
	w, err := watch.New(p.manifest.Path, watchDebounce, func(ev watch.Event) {
		if !quiet {
			fmt.Fprintf(os.Stderr, "%s changed, rebuilding\n", ev.Path)
		}
		if err := p.orch.Recompile(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "watching %s\n", p.manifest.Path)
	}
	return w.Run(ctx)
}
